package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/utils"
	"github.com/vpetrenko/reelsync/models"
)

type httpCloudAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs an HTTP/REST implementation of [CloudAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCloudAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CloudAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpCloudAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CloudAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpCloudAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CloudAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpCloudAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [CloudAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpCloudAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, requestError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

// Login implements [CloudAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpCloudAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, requestError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// ListMovies implements [CloudAdapter].
func (h *httpCloudAdapter) ListMovies(ctx context.Context) ([]models.FavouriteMovie, error) {
	return listFavourites[models.FavouriteMovie](ctx, h, models.KindMovie)
}

// AddMovie implements [CloudAdapter]. The upsert is idempotent, so retried
// sync uploads are harmless.
func (h *httpCloudAdapter) AddMovie(ctx context.Context, movie models.FavouriteMovie) error {
	return addFavourite(ctx, h, models.KindMovie, movie)
}

// RemoveMovie implements [CloudAdapter].
func (h *httpCloudAdapter) RemoveMovie(ctx context.Context, id int64) (bool, error) {
	return removeFavourite(ctx, h, models.KindMovie, id)
}

// ListShows implements [CloudAdapter].
func (h *httpCloudAdapter) ListShows(ctx context.Context) ([]models.FavouriteShow, error) {
	return listFavourites[models.FavouriteShow](ctx, h, models.KindShow)
}

// AddShow implements [CloudAdapter].
func (h *httpCloudAdapter) AddShow(ctx context.Context, show models.FavouriteShow) error {
	return addFavourite(ctx, h, models.KindShow, show)
}

// RemoveShow implements [CloudAdapter].
func (h *httpCloudAdapter) RemoveShow(ctx context.Context, id int64) (bool, error) {
	return removeFavourite(ctx, h, models.KindShow, id)
}

// ListPeople implements [CloudAdapter].
func (h *httpCloudAdapter) ListPeople(ctx context.Context) ([]models.FavouritePerson, error) {
	return listFavourites[models.FavouritePerson](ctx, h, models.KindPerson)
}

// AddPerson implements [CloudAdapter].
func (h *httpCloudAdapter) AddPerson(ctx context.Context, person models.FavouritePerson) error {
	return addFavourite(ctx, h, models.KindPerson, person)
}

// RemovePerson implements [CloudAdapter].
func (h *httpCloudAdapter) RemovePerson(ctx context.Context, id int64) (bool, error) {
	return removeFavourite(ctx, h, models.KindPerson, id)
}

func listFavourites[T models.Favourite](ctx context.Context, h *httpCloudAdapter, kind models.Kind) ([]T, error) {
	resp, err := h.authedRequest(ctx).Get("/api/favourites/" + string(kind))
	if err != nil {
		return nil, requestError("list "+string(kind), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ListResponse[T]
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list %s response: %w", kind, err)
	}

	return list.Items, nil
}

func addFavourite[T models.Favourite](ctx context.Context, h *httpCloudAdapter, kind models.Kind, item T) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put("/api/favourites/" + string(kind))
	if err != nil {
		return requestError("add "+string(kind), err)
	}

	return mapHTTPError(resp)
}

func removeFavourite(ctx context.Context, h *httpCloudAdapter, kind models.Kind, id int64) (bool, error) {
	resp, err := h.authedRequest(ctx).
		Delete("/api/favourites/" + string(kind) + "/" + strconv.FormatInt(id, 10))
	if err != nil {
		return false, requestError("remove "+string(kind), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var rr models.RemoveResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return false, fmt.Errorf("decode remove %s response: %w", kind, err)
	}

	return rr.Removed, nil
}

// RequestFriend implements [CloudAdapter].
func (h *httpCloudAdapter) RequestFriend(ctx context.Context, login string) (models.Friendship, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login": login}).
		Post("/api/friends")
	if err != nil {
		return models.Friendship{}, requestError("friend request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Friendship{}, err
	}

	var friendship models.Friendship
	if err = json.Unmarshal(resp.Body(), &friendship); err != nil {
		return models.Friendship{}, fmt.Errorf("decode friend request response: %w", err)
	}

	return friendship, nil
}

// ListFriends implements [CloudAdapter].
func (h *httpCloudAdapter) ListFriends(ctx context.Context) ([]models.Friend, error) {
	resp, err := h.authedRequest(ctx).Get("/api/friends")
	if err != nil {
		return nil, requestError("list friends", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var friends []models.Friend
	if err = json.Unmarshal(resp.Body(), &friends); err != nil {
		return nil, fmt.Errorf("decode friends list response: %w", err)
	}

	return friends, nil
}

// RespondFriend implements [CloudAdapter].
func (h *httpCloudAdapter) RespondFriend(ctx context.Context, login string, accept bool) (models.Friendship, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]bool{"accept": accept}).
		Patch("/api/friends/" + url.PathEscape(login))
	if err != nil {
		return models.Friendship{}, requestError("respond friend", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Friendship{}, err
	}

	var friendship models.Friendship
	if err = json.Unmarshal(resp.Body(), &friendship); err != nil {
		return models.Friendship{}, fmt.Errorf("decode respond friend response: %w", err)
	}

	return friendship, nil
}

// OverlapMovies implements [CloudAdapter].
func (h *httpCloudAdapter) OverlapMovies(ctx context.Context, login string) ([]models.FavouriteMovie, error) {
	return friendOverlap[models.FavouriteMovie](ctx, h, login, models.KindMovie)
}

// OverlapShows implements [CloudAdapter].
func (h *httpCloudAdapter) OverlapShows(ctx context.Context, login string) ([]models.FavouriteShow, error) {
	return friendOverlap[models.FavouriteShow](ctx, h, login, models.KindShow)
}

// OverlapPeople implements [CloudAdapter].
func (h *httpCloudAdapter) OverlapPeople(ctx context.Context, login string) ([]models.FavouritePerson, error) {
	return friendOverlap[models.FavouritePerson](ctx, h, login, models.KindPerson)
}

func friendOverlap[T models.Favourite](ctx context.Context, h *httpCloudAdapter, login string, kind models.Kind) ([]T, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/friends/" + url.PathEscape(login) + "/overlap/" + string(kind))
	if err != nil {
		return nil, requestError("overlap "+string(kind), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ListResponse[T]
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode overlap %s response: %w", kind, err)
	}

	return list.Items, nil
}

func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// requestError marks transport-level failures (refused connections, timeouts)
// as [ErrUnavailable] so callers can distinguish an unreachable server from a
// rejected request.
func requestError(op string, err error) error {
	return fmt.Errorf("%s request: %w", op, errors.Join(ErrUnavailable, err))
}
