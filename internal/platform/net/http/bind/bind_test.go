package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "funnel/internal/platform/errors"
)

type payload struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Count int    `json:"count" validate:"omitempty,max=10"`
}

func jsonReq(method, body string) *http.Request {
	return httptest.NewRequest(method, "/x", strings.NewReader(body))
}

func TestParseJSON_HappyPath(t *testing.T) {
	got, err := ParseJSON[payload](jsonReq(http.MethodPost, `{"name":"ada","email":"ada@acme.test"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Name != "ada" || got.Email != "ada@acme.test" {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	// POST with empty body is a JSON error
	_, err := ParseJSON[payload](jsonReq(http.MethodPost, ""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty POST body code = %v, want JSON", perr.CodeOf(err))
	}

	// safe methods tolerate an empty body and return the zero value
	got, err := ParseJSON[payload](jsonReq(http.MethodGet, ""))
	if err != nil {
		t.Fatalf("empty GET body: %v", err)
	}
	if got != (payload{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_MalformedAndTrailing(t *testing.T) {
	if _, err := ParseJSON[payload](jsonReq(http.MethodPost, `{"name":`)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("malformed code = %v, want JSON", perr.CodeOf(err))
	}
	if _, err := ParseJSON[payload](jsonReq(http.MethodPost, `{"name":"ab"} {"x":1}`)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data code = %v, want JSON", perr.CodeOf(err))
	}
}

func TestParseJSON_UnknownFieldRejected(t *testing.T) {
	_, err := ParseJSON[payload](jsonReq(http.MethodPost, `{"name":"ab","bogus":true}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field code = %v, want JSON", perr.CodeOf(err))
	}

	// opt-out keeps the decode permissive
	got, err := ParseJSON[payload](
		jsonReq(http.MethodPost, `{"name":"ab","bogus":true}`),
		JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: false},
	)
	if err != nil {
		t.Fatalf("permissive decode: %v", err)
	}
	if got.Name != "ab" {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestParseJSON_ValidationUsesJSONTagNames(t *testing.T) {
	_, err := ParseJSON[payload](jsonReq(http.MethodPost, `{"name":"a"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	e, ok := perr.As(err)
	if !ok {
		t.Fatal("expected project error")
	}
	if e.Field() != "name" {
		t.Fatalf("field = %q, want json tag name", e.Field())
	}
	// short min translation
	if want := "name must be at least 2"; e.Error() != want {
		t.Fatalf("message = %q, want %q", e.Error(), want)
	}
}

func TestParseJSON_ShortMaxTranslation(t *testing.T) {
	_, err := ParseJSON[payload](jsonReq(http.MethodPost, `{"name":"ab","count":99}`))
	e, ok := perr.As(err)
	if !ok {
		t.Fatal("expected project error")
	}
	if want := "count must be at most 10"; e.Error() != want {
		t.Fatalf("message = %q, want %q", e.Error(), want)
	}
}

func TestValidationFieldAndMessage_NilAndForeign(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil = (%q, %q)", f, m)
	}
	if f, m := ValidationFieldAndMessage(perr.Internalf("boom")); f != "" || m != "boom" {
		t.Fatalf("foreign = (%q, %q)", f, m)
	}
}
