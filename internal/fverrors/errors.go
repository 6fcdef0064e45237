// Package fverrors contains all common errors used by the FolioView client.
package fverrors

import "fmt"

var ErrSessionExpired = fmt.Errorf("the session has expired")
var ErrSessionInvalidated = fmt.Errorf("the session has been invalidated")
var ErrTokenNotFound = fmt.Errorf("the token cannot be found")
var ErrTokenExpired = fmt.Errorf("the token is expired")
var ErrMissingCredentials = fmt.Errorf("the required credentials cannot be found")
var ErrNotFound = fmt.Errorf("the requested resource cannot be found")
var ErrMissingStoreResource = fmt.Errorf("the requested resource cannot be found in the store")
