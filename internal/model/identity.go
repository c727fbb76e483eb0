package model

import "github.com/google/uuid"

// Identity идентичность вызывающего. Нулевое значение соответствует анониму.
type Identity struct {
	userID uuid.UUID
	set    bool
}

// Anonymous возвращает анонимную идентичность
func Anonymous() Identity {
	return Identity{}
}

// UserIdentity возвращает идентичность аутентифицированного пользователя
func UserIdentity(userID uuid.UUID) Identity {
	return Identity{userID: userID, set: true}
}

// UserID возвращает идентификатор пользователя и признак аутентификации
func (i Identity) UserID() (uuid.UUID, bool) {
	return i.userID, i.set
}

func (i Identity) IsAnonymous() bool {
	return !i.set
}

// Is сообщает, совпадает ли вызывающий с указанным пользователем.
// Аноним не совпадает ни с кем.
func (i Identity) Is(userID uuid.UUID) bool {
	return i.set && i.userID == userID
}

// UserIDPtr возвращает nil для анонима, иначе указатель на копию id
func (i Identity) UserIDPtr() *uuid.UUID {
	if !i.set {
		return nil
	}
	id := i.userID
	return &id
}

func (i Identity) String() string {
	if !i.set {
		return "anonymous"
	}
	return i.userID.String()
}
