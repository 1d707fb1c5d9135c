package service

import (
	"errors"

	"github.com/Freeeeeet/beachrooms_bot/internal/repository/base"
)

var (
	// ErrUnauthenticated операция требует входа; сеть при этом не используется
	ErrUnauthenticated = errors.New("must be logged in")
	// ErrClassroomNotFound аудитория не найдена
	ErrClassroomNotFound = errors.New("classroom not found")
)

// RemoteError ошибка удалённого хранилища с текстом для пользователя
type RemoteError struct {
	Op      string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func newRemoteError(op string, err error) *RemoteError {
	return &RemoteError{Op: op, Message: remoteMessage(err), Err: err}
}

// remoteMessage достаёт текст ошибки сервера, если он есть
func remoteMessage(err error) string {
	msg := base.ErrorMessage(err)
	if msg == "" {
		return "request failed"
	}
	return msg
}
