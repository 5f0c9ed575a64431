package repository_test

import (
	"errors"

	"kanbanboard/internal/repository"
)

func errorsIsUnsupported(err error) bool {
	return errors.Is(err, repository.ErrUnsupportedVersion)
}
