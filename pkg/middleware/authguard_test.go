package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/zaoinc/rustnext/pkg/server"
)

func TestAuthGuard(t *testing.T) {
	tests := []struct {
		name       string
		opts       []AuthGuardOption
		user       *server.Identity
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "anonymous rejected",
			user:       nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "authenticated passes without role requirements",
			user:     &server.Identity{Subject: "u1"},
			wantNext: true,
		},
		{
			name:       "missing role rejected",
			opts:       []AuthGuardOption{RequireRole("admin")},
			user:       &server.Identity{Subject: "u1", Roles: []string{"viewer"}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "any required role admits",
			opts:     []AuthGuardOption{RequireRole("admin"), RequireRole("editor")},
			user:     &server.Identity{Subject: "u1", Roles: []string{"editor"}},
			wantNext: true,
		},
		{
			name:       "anonymous with redirect",
			opts:       []AuthGuardOption{RedirectTo("/login")},
			user:       nil,
			wantStatus: http.StatusFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handled int
			req := testRequest("GET", "/admin")
			req.User = tt.user

			resp, err := AuthGuard(tt.opts...).Handle(context.Background(), req, countingHandler(&handled))
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}

			if tt.wantNext {
				if handled != 1 {
					t.Error("expected the handler to run")
				}
				return
			}
			if handled != 0 {
				t.Error("handler ran despite rejection")
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusFound {
				if loc := resp.Headers.Get("Location"); loc != "/login" {
					t.Errorf("Location = %q", loc)
				}
			}
		})
	}
}
