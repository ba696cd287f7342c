package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func formRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegistrationFormValidation(t *testing.T) {
	problems := validate(formRequest(url.Values{}), registrationForm)
	assert.Equal(t, "This field is required.", problems["email"])
	assert.Equal(t, "Password must be at least 6 characters", problems["password"])
	assert.Equal(t, "You can make one up, we don't care", problems["name"])

	problems = validate(formRequest(url.Values{
		"email":    {"not-an-email"},
		"password": {"longenough"},
		"name":     {"Anyone"},
	}), registrationForm)
	assert.Equal(t, "Valid Email Required", problems["email"])
	assert.NotContains(t, problems, "password")
	assert.NotContains(t, problems, "name")

	problems = validate(formRequest(url.Values{
		"email":    {"someone@example.com"},
		"password": {"short"},
		"name":     {"Anyone"},
	}), registrationForm)
	assert.Equal(t, "Password must be at least 6 characters", problems["password"])

	problems = validate(formRequest(url.Values{
		"email":    {"someone@example.com"},
		"password": {"longenough"},
		"name":     {"Anyone"},
	}), registrationForm)
	assert.Empty(t, problems)
}

func TestCreatePostFormValidation(t *testing.T) {
	problems := validate(formRequest(url.Values{
		"title":    {"A Title"},
		"subtitle": {"A Subtitle"},
		"img_url":  {"definitely not a url"},
		"body":     {"<p>content</p>"},
	}), createPostForm)
	assert.Equal(t, "Invalid URL.", problems["img_url"])

	problems = validate(formRequest(url.Values{
		"subtitle": {"A Subtitle"},
		"img_url":  {"https://example.com/cover.png"},
		"body":     {"<p>content</p>"},
	}), createPostForm)
	assert.Equal(t, "This field is required.", problems["title"])

	problems = validate(formRequest(url.Values{
		"title":    {"A Title"},
		"subtitle": {"A Subtitle"},
		"img_url":  {"https://example.com/cover.png"},
		"body":     {"<p>content</p>"},
	}), createPostForm)
	assert.Empty(t, problems)
}

func TestCommentFormValidation(t *testing.T) {
	problems := validate(formRequest(url.Values{"body": {"   "}}), commentForm)
	assert.Equal(t, "This field is required.", problems["body"])

	problems = validate(formRequest(url.Values{"body": {"nice post"}}), commentForm)
	assert.Empty(t, problems)
}

func TestFormValuesSnapshot(t *testing.T) {
	values := formValues(formRequest(url.Values{
		"email":    {"someone@example.com"},
		"password": {"secret"},
	}), loginForm)
	assert.Equal(t, "someone@example.com", values["email"])
	assert.Equal(t, "secret", values["password"])
}
