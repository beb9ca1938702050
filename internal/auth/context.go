package auth

import "context"

type contextKey string

const (
	contextKeyVenue   contextKey = "auth.venue_id"
	contextKeyRole    contextKey = "auth.role"
	contextKeySubject contextKey = "auth.subject"
)

// WithIdentity stores auth identity details in context.
func WithIdentity(ctx context.Context, venueID string, role Role, subject string) context.Context {
	ctx = context.WithValue(ctx, contextKeyVenue, venueID)
	ctx = context.WithValue(ctx, contextKeyRole, role)
	ctx = context.WithValue(ctx, contextKeySubject, subject)
	return ctx
}

// VenueIDFromContext extracts the venue id from context.
func VenueIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if venueID, ok := ctx.Value(contextKeyVenue).(string); ok {
		return venueID
	}
	return ""
}

// RoleFromContext extracts role from context.
func RoleFromContext(ctx context.Context) Role {
	if ctx == nil {
		return ""
	}
	value := ctx.Value(contextKeyRole)
	if role, ok := value.(Role); ok {
		return role
	}
	if role, ok := value.(string); ok {
		if normalized, valid := NormalizeRole(role); valid {
			return normalized
		}
	}
	return ""
}

// SubjectFromContext extracts subject from context.
func SubjectFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if subject, ok := ctx.Value(contextKeySubject).(string); ok {
		return subject
	}
	return ""
}
