package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("an account with this email already exists")
var ErrInvalidInput = errors.New("invalid input")
var ErrNoActiveSession = errors.New("no active session")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrForbidden = errors.New("access forbidden")
