package site

import (
	"fmt"
	"net/http"
	"net/mail"
	"net/url"
	"strings"

	"inkwell/constants"
)

// Each form is a flat list of field constraints checked together before any
// side effect runs. A rule returns its message when the value violates it.

type Rule struct {
	Check   func(value string) bool
	Message string
}

type Field struct {
	Name  string
	Rules []Rule
}

func required(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
		Message: message,
	}
}

func validEmail(message string) Rule {
	return Rule{
		Check: func(v string) bool {
			addr, err := mail.ParseAddress(v)
			return err == nil && addr.Address == v
		},
		Message: message,
	}
}

func validURL(message string) Rule {
	return Rule{
		Check: func(v string) bool {
			u, err := url.Parse(v)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Message: message,
	}
}

func minLength(n int, message string) Rule {
	return Rule{
		Check:   func(v string) bool { return len(v) >= n },
		Message: message,
	}
}

var createPostForm = []Field{
	{Name: "title", Rules: []Rule{required("This field is required.")}},
	{Name: "subtitle", Rules: []Rule{required("This field is required.")}},
	{Name: "img_url", Rules: []Rule{required("This field is required."), validURL("Invalid URL.")}},
	{Name: "body", Rules: []Rule{required("This field is required.")}},
}

var registrationForm = []Field{
	{Name: "email", Rules: []Rule{required("This field is required."), validEmail("Valid Email Required")}},
	{Name: "password", Rules: []Rule{minLength(constants.MIN_PASSWORD_LENGTH,
		fmt.Sprintf("Password must be at least %d characters", constants.MIN_PASSWORD_LENGTH))}},
	{Name: "name", Rules: []Rule{required("You can make one up, we don't care")}},
}

// Login shares the registration shape checks; whether the account exists is
// decided after validation, not here.
var loginForm = []Field{
	{Name: "email", Rules: []Rule{required("This field is required."), validEmail("Valid Email Required")}},
	{Name: "password", Rules: []Rule{minLength(constants.MIN_PASSWORD_LENGTH,
		fmt.Sprintf("Password must be at least %d characters", constants.MIN_PASSWORD_LENGTH))}},
}

var commentForm = []Field{
	{Name: "body", Rules: []Rule{required("This field is required.")}},
}

// validate evaluates every rule of every field and returns field -> first
// violated message. An empty map means the submission is acceptable.
func validate(r *http.Request, fields []Field) map[string]string {
	problems := make(map[string]string)
	for _, field := range fields {
		value := r.FormValue(field.Name)
		for _, rule := range field.Rules {
			if !rule.Check(value) {
				problems[field.Name] = rule.Message
				break
			}
		}
	}
	return problems
}

// formValues snapshots the submitted values so a failed validation can
// re-render the form pre-filled.
func formValues(r *http.Request, fields []Field) map[string]string {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field.Name] = r.FormValue(field.Name)
	}
	return values
}
