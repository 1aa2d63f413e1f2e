package client

import "errors"

// Op names a remote operation.
type Op string

const (
	OpLogin            Op = "login"
	OpSignup           Op = "signup"
	OpListUsers        Op = "list_users"
	OpUpdateUserStatus Op = "update_user_status"
	OpDeleteUser       Op = "delete_user"
)

// ErrRequestFailed matches every *RequestFailedError.
var ErrRequestFailed = errors.New("request failed")

var opMessages = map[Op]string{
	OpLogin:            "Login failed",
	OpSignup:           "Signup failed",
	OpListUsers:        "Failed to fetch users",
	OpUpdateUserStatus: "Failed to update user status",
	OpDeleteUser:       "Failed to delete user",
}

// RequestFailedError is the single failure kind of the API client: transport
// errors, non-2xx statuses and undecodable success bodies all collapse into it.
// The message is fixed per operation and never carries backend detail.
type RequestFailedError struct {
	Op Op
}

func (e *RequestFailedError) Error() string {
	if msg, ok := opMessages[e.Op]; ok {
		return msg
	}
	return string(e.Op) + " failed"
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

func failed(op Op) error {
	return &RequestFailedError{Op: op}
}
