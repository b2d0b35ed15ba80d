package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// BearerToken pulls the access token out of the Authorization header.
// A missing or malformed header yields an empty token; the session
// validator turns that into the not-signed-in failure, so the denial
// decision stays in one place.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, "Bearer ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// BasicCredentials decodes the Basic Authorization header into a
// username/password pair. Malformed input comes back as empty
// credentials, which fail authentication downstream.
func BasicCredentials(r *http.Request) (string, string) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, "Basic ", 2)
	if len(parts) != 2 {
		return "", ""
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", ""
	}
	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", ""
	}
	return username, password
}
