package app_errors

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeInvalidSignature        Code = "INVALID_SIGNATURE"
	CodeAlreadyRegistered       Code = "ALREADY_REGISTERED"
	CodeAlreadyVoted            Code = "ALREADY_VOTED"
	CodeVoterNotRegistered      Code = "VOTER_NOT_REGISTERED"
	CodeElectionNotFound        Code = "ELECTION_NOT_FOUND"
	CodeElectionNotActive       Code = "ELECTION_NOT_ACTIVE"
	CodeCandidateNotFound       Code = "CANDIDATE_NOT_FOUND"
	CodeCandidateNotEligible    Code = "CANDIDATE_NOT_ELIGIBLE"
	CodeInvalidTransition       Code = "INVALID_TRANSITION"
	CodeLedgerSubmissionFailed  Code = "LEDGER_SUBMISSION_FAILED"
	CodeDuplicateVotePostLedger Code = "DUPLICATE_VOTE_DETECTED_POST_LEDGER"
	CodeNotAuthorized           Code = "NOT_AUTHORIZED"
	CodeRateLimited             Code = "RATE_LIMITED"
	CodeInvalidInput            Code = "INVALID_INPUT"
	CodeInternal                Code = "INTERNAL"
)

type ServiceError struct {
	Code    Code
	Message string
	Err     error
}

func (serviceError *ServiceError) Error() string {
	if serviceError.Err != nil {
		return fmt.Sprintf("%s: %s: %v", serviceError.Code, serviceError.Message, serviceError.Err)
	}

	return fmt.Sprintf("%s: %s", serviceError.Code, serviceError.Message)
}

func (serviceError *ServiceError) Unwrap() error {
	return serviceError.Err
}

func New(code Code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *ServiceError {
	return &ServiceError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: message, Err: err}
}

func CodeOf(err error) Code {
	var serviceError *ServiceError
	if errors.As(err, &serviceError) {
		return serviceError.Code
	}

	return CodeInternal
}

func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Retryable reports whether the whole operation may be safely retried by the
// caller. Only infrastructure failures before any local mutation qualify.
func Retryable(err error) bool {
	return HasCode(err, CodeLedgerSubmissionFailed)
}
