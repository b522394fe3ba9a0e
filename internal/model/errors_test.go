package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIError_WriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	NewInvalidInviteCodeError().WriteJSON(rr)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Invalid invite code" {
		t.Errorf("unexpected message: %q", body["error"])
	}
	if len(body) != 1 {
		t.Errorf("expected a flat single-field body, got %v", body)
	}
}

func TestAPIError_FixedMessages(t *testing.T) {
	cases := []struct {
		err     *APIError
		status  int
		message string
	}{
		{NewInvalidInviteCodeError(), http.StatusBadRequest, "Invalid invite code"},
		{NewUnauthorizedError(), http.StatusUnauthorized, "Authentication failed"},
		{NewServerError(), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tc := range cases {
		if tc.err.Status != tc.status {
			t.Errorf("expected status %d, got %d", tc.status, tc.err.Status)
		}
		if tc.err.Message != tc.message {
			t.Errorf("expected message %q, got %q", tc.message, tc.err.Message)
		}
	}
}

func TestUser_JSONShape(t *testing.T) {
	referrer := "carol"
	user := &User{
		UID:        "hidden",
		Username:   "alice",
		InviteCode: "ali1234",
		ReferredBy: &referrer,
		Referrals:  3,
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	for _, field := range []string{"username", "inviteCode", "referredBy", "referrals"} {
		if _, ok := body[field]; !ok {
			t.Errorf("expected field %s in JSON", field)
		}
	}
	if _, ok := body["uid"]; ok {
		t.Error("uid must not appear in JSON")
	}
}

func TestUser_IsReferred(t *testing.T) {
	referrer := "carol"
	if (&User{ReferredBy: &referrer}).IsReferred() != true {
		t.Error("expected referred user")
	}
	if (&User{}).IsReferred() != false {
		t.Error("expected non-referred user")
	}
}
