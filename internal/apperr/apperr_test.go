package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, AuthorizationFailed(CodeNotSignedIn, "m").HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, AuthenticationFailed(CodeWrongPassword, "m").HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, SignOutRestricted(CodeSignOutRestricted, "m").HTTPStatus())
	assert.Equal(t, http.StatusUnprocessableEntity, SignUpRestricted(CodeUsernameTaken, "m").HTTPStatus())
	assert.Equal(t, http.StatusUnprocessableEntity, NotFound(CodeQuestionNotFound, "m").HTTPStatus())
}

func TestErrorString(t *testing.T) {
	err := NotFound(CodeAnswerNotFound, "Entered answer uuid does not exist")
	assert.EqualError(t, err, "ANS-001: Entered answer uuid does not exist")
}

func TestAsUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("operation failed: %w", AuthorizationFailed(CodeSignedOut, "User is signed out"))

	e, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeSignedOut, e.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsCode(t *testing.T) {
	err := AuthorizationFailed(CodeSignedOut, "User is signed out")
	assert.True(t, IsCode(err, CodeSignedOut))
	assert.False(t, IsCode(err, CodeNotSignedIn))
	assert.False(t, IsCode(errors.New("plain"), CodeSignedOut))
	assert.False(t, IsCode(nil, CodeSignedOut))
}

func TestSignUpAndSignOutShareCode(t *testing.T) {
	// The original API reuses SGR-001 for two unrelated failures; they
	// stay apart by message and kind.
	signup := SignUpRestricted(CodeUsernameTaken, "Try any other Username, this Username has already been taken")
	signout := SignOutRestricted(CodeSignOutRestricted, "User is not Signed in")

	assert.Equal(t, signup.Code, signout.Code)
	assert.NotEqual(t, signup.Message, signout.Message)
	assert.NotEqual(t, signup.HTTPStatus(), signout.HTTPStatus())
}
