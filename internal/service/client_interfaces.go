package service

import (
	"context"
	"time"

	"github.com/vpetrenko/reelsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account registration
// and authentication against the cloud server.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user and
	// stores the returned bearer token in the adapter.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user against the server. After the first
	// successful login of a session it also runs one bidirectional sync so
	// the local library converges with the cloud copy; a failed auto-sync is
	// logged but does not fail the login.
	// Returns the server-assigned user ID.
	Login(ctx context.Context, user models.User) (int64, error)

	// Logout drops the bearer token, deletes the persisted session, wipes
	// the local favourites database, and re-arms the once-per-session
	// auto-sync.
	Logout(ctx context.Context) error

	// RestoreSession loads the persisted bearer token, if any, into the
	// adapter. Called once at process start so authenticated commands keep
	// working across CLI invocations. A missing session is not an error.
	RestoreSession(ctx context.Context) error
}

// ClientFavouritesService manages the user's favourite collections. Every
// operation is applied to the local database first; when the user is
// authenticated the change is also propagated to the cloud in the same call.
// A failed cloud propagation never rolls back the local change: the next
// sync reconciles the two copies.
type ClientFavouritesService interface {
	ListMovies(ctx context.Context) ([]models.FavouriteMovie, error)
	AddMovie(ctx context.Context, movie models.FavouriteMovie) error
	RemoveMovie(ctx context.Context, id int64) (bool, error)

	ListShows(ctx context.Context) ([]models.FavouriteShow, error)
	AddShow(ctx context.Context, show models.FavouriteShow) error
	RemoveShow(ctx context.Context, id int64) (bool, error)

	ListPeople(ctx context.Context) ([]models.FavouritePerson, error)
	AddPerson(ctx context.Context, person models.FavouritePerson) error
	RemovePerson(ctx context.Context, id int64) (bool, error)
}

// ClientFriendsService manages friendships and favourite overlaps through the
// cloud server. Friendships live on the server only; every operation requires
// an authenticated session and fails with [ErrNotAuthenticated] without one.
type ClientFriendsService interface {
	// Request sends a friend request to the user with the given login.
	Request(ctx context.Context, login string) (models.Friendship, error)

	// List returns every friendship of the current user, pending included.
	List(ctx context.Context) ([]models.Friend, error)

	// Respond accepts or rejects the pending request from the given login.
	Respond(ctx context.Context, login string, accept bool) (models.Friendship, error)

	// Overlap returns the favourites of the given kind that the current user
	// and the accepted friend have in common, as the user's own copies.
	Overlap(ctx context.Context, login string, kind models.Kind) (models.Snapshot, error)
}

// SyncEngine holds the pure favourite-set comparison logic shared by the sync
// orchestrator. It never touches storage or the network.
type SyncEngine interface {
	// Status compares the local and cloud snapshots and reports per-kind
	// counts plus the id-set deltas in both directions. The snapshots are in
	// sync exactly when every delta count is zero.
	Status(local, cloud models.Snapshot) models.SyncStatus

	// Merge computes, per kind, the items missing from the cloud (ToUpload),
	// the items missing locally (ToDownload), and the merged collection (All).
	// When the same catalog id exists on both sides the local copy wins.
	Merge(local, cloud models.Snapshot) models.MergeData
}

// ClientSyncService orchestrates synchronisation between the local favourites
// database and the user's cloud collections. At most one sync runs at a time;
// a second call while one is in flight fails with [ErrSyncInProgress].
type ClientSyncService interface {
	// SyncStatus fetches both snapshots and reports how they differ. Fails if
	// the user is not authenticated or the cloud cannot be reached.
	SyncStatus(ctx context.Context) (models.SyncStatus, error)

	// UploadAll pushes every local favourite to the cloud and stamps the
	// last-sync date on success. Cloud adds are idempotent upserts, so
	// repeating an interrupted upload is safe.
	UploadAll(ctx context.Context) error

	// BidirectionalSync merges the local and cloud collections in both
	// directions: first every upload (movies, then shows, then people), then
	// every download in the same kind order, then the last-sync date stamp.
	// Partial effects of a failed sync are not rolled back; re-running the
	// sync completes the merge.
	BidirectionalSync(ctx context.Context) (models.MergeData, error)

	// LastSync returns the time of the last completed bidirectional sync, or
	// the zero time if none has completed yet.
	LastSync(ctx context.Context) (time.Time, error)

	// Wipe deletes every favourite from the local database and clears the
	// last-sync date. Cloud collections are left untouched.
	Wipe(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically runs a bidirectional sync for the authenticated user.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
