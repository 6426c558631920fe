package errs

import "errors"

// Domain errors. Handlers translate these to HTTP statuses, repositories
// translate driver errors into them.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRoomNameTaken   = errors.New("room name already taken")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrTeamFull        = errors.New("team is full")
	ErrDuplicateMember = errors.New("player is already in the team")
	ErrTeamEmpty       = errors.New("team has no players")
	ErrInvalidInput    = errors.New("invalid input")
)
