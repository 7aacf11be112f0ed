package payment

import (
	"context"

	"transit-booking/internal/usecase/shared"
)

// SandboxGateway approves every charge without leaving the process. Development only.
type SandboxGateway struct{}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{}
}

func (SandboxGateway) Charge(ctx context.Context, req shared.ChargeRequest) (shared.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return shared.ChargeResult{}, err
	}
	return shared.ChargeResult{Approved: true, Reference: "sandbox-" + req.IdempotencyKey}, nil
}
