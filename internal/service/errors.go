package service

import (
	"errors"
	"fmt"
)

var (
	// ErrLinkNotFound ссылка с указанным идентификатором или кодом не существует
	ErrLinkNotFound = errors.New("link not found")

	// ErrForbidden общий родитель отказов в переходе по ссылке
	ErrForbidden = errors.New("access to link is forbidden")
	// ErrLinkDeleted ссылка помечена удаленной; проверяется раньше приватности
	ErrLinkDeleted = fmt.Errorf("%w: link is deleted", ErrForbidden)
	// ErrLinkPrivate ссылка приватная, а вызывающий не владелец
	ErrLinkPrivate = fmt.Errorf("%w: link is private", ErrForbidden)

	// ErrNotOwner изменить ссылку может только владелец
	ErrNotOwner = errors.New("only the owner can modify the link")
	// ErrDeleteNotAllowed физическое удаление запрещено, используйте is_deleted
	ErrDeleteNotAllowed = errors.New("delete is not allowed, update is_deleted instead")
	// ErrCodeConflict не удалось подобрать свободный код за отведенное число попыток
	ErrCodeConflict = errors.New("failed to allocate a unique short code")

	// ErrValidation родитель всех ошибок входных данных
	ErrValidation = errors.New("validation failed")
	// ErrURLTooLong оригинальный адрес длиннее MaxURLLength
	ErrURLTooLong = fmt.Errorf("%w: url is too long", ErrValidation)
	// ErrInvalidPagination max-result должен быть положительным, offset неотрицательным
	ErrInvalidPagination = fmt.Errorf("%w: invalid pagination", ErrValidation)
	// ErrInvalidVisibility допустимы только public и private
	ErrInvalidVisibility = fmt.Errorf("%w: invalid link type", ErrValidation)

	// ErrUnauthenticated операция требует идентифицированного пользователя
	ErrUnauthenticated = errors.New("authentication required")
)
