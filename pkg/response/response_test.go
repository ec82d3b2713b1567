package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-scheduling-assistant/pkg/response"
)

// record runs send against a test context and decodes the envelope it wrote.
func record(t *testing.T, send func(c *gin.Context)) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	send(c)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal body %q: %v", w.Body.String(), err)
	}

	return w, resp
}

func TestOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w, resp := record(t, func(c *gin.Context) {
		response.OK(c, map[string]string{"status": "accepted"})
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("expected message %q, got %q", response.MessageSuccess, resp.Message)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["status"] != "accepted" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("With Details", func(t *testing.T) {
		w, resp := record(t, func(c *gin.Context) {
			response.Error(c, errors.New("bad payload"), map[string]interface{}{"field": "invalid"})
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
		if resp.ErrorCode != 1 {
			t.Errorf("expected error_code 1, got %d", resp.ErrorCode)
		}
		if resp.Message != "bad payload" {
			t.Errorf("expected the error text, got %q", resp.Message)
		}

		data, ok := resp.Data.(map[string]interface{})
		if !ok || data["field"] != "invalid" {
			t.Errorf("unexpected details payload: %v", resp.Data)
		}
	})

	t.Run("Nil Details Become Empty Object", func(t *testing.T) {
		_, resp := record(t, func(c *gin.Context) {
			response.Error(c, errors.New("bad payload"), nil)
		})

		if resp.Data == nil {
			t.Error("expected an empty details object, got nothing")
		}
	})
}

func TestInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w, resp := record(t, func(c *gin.Context) {
		response.InternalError(c, errors.New("db exploded"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("expected the default message, got %q", resp.Message)
	}
	if strings.Contains(resp.Message, "db exploded") {
		t.Error("internal error detail leaked to the caller")
	}
}

func TestUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w, _ := record(t, func(c *gin.Context) {
		response.Unauthorized(c)
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w, _ := record(t, func(c *gin.Context) {
		response.Forbidden(c)
	})

	if w.Code != http.StatusForbidden {
		t.Errorf("expected %d, got %d", http.StatusForbidden, w.Code)
	}
}
