package usecase

import "context"

// AuthClient is the slice of the Firebase auth client the usecases need.
type AuthClient interface {
	SignInWithEmailPassword(email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	RevokeTokens(ctx context.Context, uid string) error
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// Uploader is the blob store side-channel: data URLs go in, stable
// retrieval URLs come out.
type Uploader interface {
	UploadDataURL(ctx context.Context, dataURL, path string) (string, error)
	DeleteByURL(ctx context.Context, fileURL string) error
}

// Broadcaster fans live feed events out to connected clients.
type Broadcaster interface {
	Broadcast(message []byte)
	ClientCount() int
}
