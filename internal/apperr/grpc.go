package apperr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const genericFailure = "operation failed, please try again"

// GRPCStatus converts err into a status error for the transport. Storage
// details never leave the process.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, genericFailure)
	}
	switch appErr.Kind {
	case KindValidation, KindPayment, KindEmptyCart:
		return status.Error(codes.InvalidArgument, appErr.Message)
	case KindNotFound:
		return status.Error(codes.NotFound, appErr.Message)
	case KindStock, KindReferential:
		return status.Error(codes.FailedPrecondition, appErr.Message)
	default:
		return status.Error(codes.Internal, genericFailure)
	}
}
