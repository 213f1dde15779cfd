package ratelimit

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/organization"
)

// ExemptPaths bypass the limiter entirely, along with everything beneath
// them: never counted, never denied.
var ExemptPaths = []string{"/api/v1/health", "/admin"}

// TenantResolver maps a path-derived organization id to an active tenant.
type TenantResolver interface {
	ResolveOrganization(id uuid.UUID) (*organization.Organization, error)
}

type limitExceededResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Limits  responseLimits `json:"limits"`
}

type responseLimits struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	RequestsPerHour   int `json:"requests_per_hour"`
}

// Middleware applies the sliding-window limiter to every non-exempt request
// before it reaches the router's handlers.
func Middleware(limiter *Limiter, tenants TenantResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExemptPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r)
			orgID := organizationFromPath(r.URL.Path, tenants)

			if !limiter.CheckAndRecord(ip, orgID) {
				writeLimitExceeded(w, ip, limiter.Config())
				return
			}

			next.ServeHTTP(w, r.WithContext(internal.ContextWithClientIP(r.Context(), ip)))
		})
	}
}

// isExemptPath matches an exempt path itself or anything under it; a bare
// prefix test would also exempt siblings like /administration.
func isExemptPath(path string) bool {
	for _, exempt := range ExemptPaths {
		if path == exempt || strings.HasPrefix(path, exempt+"/") {
			return true
		}
	}
	return false
}

// ClientIP prefers the first entry of X-Forwarded-For, falling back to the
// peer address. The header is client-supplied and spoofable; deployments
// need a trusted-proxy allowlist in front of this service before the header
// can be believed.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// organizationFromPath extracts the tenant id from organization-scoped URLs
// like /api/v1/organizations/{id}/employees/search/. Anything that does not
// resolve to an active tenant falls back to the global (nil) scope.
func organizationFromPath(path string, tenants TenantResolver) *uuid.UUID {
	if tenants == nil {
		return nil
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 4 || parts[2] != "organizations" {
		return nil
	}

	orgID, err := uuid.Parse(parts[3])
	if err != nil {
		return nil
	}

	org, err := tenants.ResolveOrganization(orgID)
	if err != nil || org == nil {
		return nil
	}
	return &org.ID
}

func writeLimitExceeded(w http.ResponseWriter, ip string, config internal.RateLimitConfig) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(limitExceededResponse{
		Error:   "Rate limit exceeded",
		Message: fmt.Sprintf("Too many requests from IP %s. Please try again later.", ip),
		Limits: responseLimits{
			RequestsPerMinute: config.RequestsPerMinute,
			RequestsPerHour:   config.RequestsPerHour,
		},
	})
}
