package principal

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of an operator-side principal. Commuters never carry a role; they act through booking tokens.
type Role string

const (
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleOperator: 1,
	RoleAdmin:    2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above minRole. Unknown roles never qualify.
func (r Role) AtLeast(minRole Role) bool {
	have, okHave := roleRank[r]
	need, okNeed := roleRank[minRole]
	return okHave && okNeed && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
