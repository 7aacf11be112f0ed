package booking

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const (
	MaxPassengerNameLength = 100
	MaxPlaceLength         = 100
	cancellationTokenBytes = 32
)

var (
	ErrInvalidPassengerName = errors.New("passenger name is required and must be at most 100 characters")
	ErrInvalidMobileNumber  = errors.New("mobile number must contain 9 to 15 digits")
	ErrInvalidEmail         = errors.New("email address is invalid")
	ErrInvalidPlace         = errors.New("boarding and destination places are required")
	ErrSamePlace            = errors.New("boarding and destination places must differ")
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

type Passenger struct {
	name   string
	mobile string
	email  string
}

func NewPassenger(name, mobile, email string) (Passenger, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxPassengerNameLength {
		return Passenger{}, ErrInvalidPassengerName
	}

	mobile = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(mobile))
	if !mobilePattern.MatchString(mobile) {
		return Passenger{}, ErrInvalidMobileNumber
	}

	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Passenger{}, ErrInvalidEmail
	}

	return Passenger{name: name, mobile: mobile, email: email}, nil
}

func (p Passenger) Name() string   { return p.name }
func (p Passenger) Mobile() string { return p.mobile }
func (p Passenger) Email() string  { return p.email }

// Journey is the boarding/destination pair a fare is resolved for.
type Journey struct {
	boarding    string
	destination string
}

func NewJourney(boarding, destination string) (Journey, error) {
	boarding = strings.TrimSpace(boarding)
	destination = strings.TrimSpace(destination)
	if boarding == "" || destination == "" ||
		utf8.RuneCountInString(boarding) > MaxPlaceLength || utf8.RuneCountInString(destination) > MaxPlaceLength {
		return Journey{}, ErrInvalidPlace
	}
	if strings.EqualFold(boarding, destination) {
		return Journey{}, ErrSamePlace
	}
	return Journey{boarding: boarding, destination: destination}, nil
}

func (j Journey) Boarding() string    { return j.boarding }
func (j Journey) Destination() string { return j.destination }

// NewTransactionID returns a time-ordered identifier so bookings sort by creation.
func NewTransactionID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// NewCancellationToken returns the token handed to the commuter and the digest that gets stored.
func NewCancellationToken() (token string, digest []byte, err error) {
	buf := make([]byte, cancellationTokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", nil, err
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, DigestToken(token), nil
}

func DigestToken(token string) []byte {
	sum := blake2b.Sum256([]byte(token))
	return sum[:]
}

// TokenMatches compares digests in constant time so the stored digest does not leak through timing.
func TokenMatches(digest []byte, token string) bool {
	if len(digest) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(digest, DigestToken(token)) == 1
}

// ReconstructPassenger rebuilds stored contact details without re-validating them.
func ReconstructPassenger(name, mobile, email string) Passenger {
	return Passenger{name: name, mobile: mobile, email: email}
}

func ReconstructJourney(boarding, destination string) Journey {
	return Journey{boarding: boarding, destination: destination}
}
