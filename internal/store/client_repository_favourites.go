package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/models"
)

type localFavouritesRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalFavouritesRepository(db *DB, logger *logger.Logger) LocalFavouritesRepository {
	return &localFavouritesRepository{
		DB:     db,
		logger: logger,
	}
}

// checkInitialised guards every repository method against use before the
// SQLite handle is opened.
func (l *localFavouritesRepository) checkInitialised() error {
	if l.DB == nil || l.DB.DB == nil {
		return ErrStoreNotInitialised
	}
	return nil
}

func (l *localFavouritesRepository) ListMovies(ctx context.Context) ([]models.FavouriteMovie, error) {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, selectAllMovies)
	if err != nil {
		log.Err(err).
			Str("func", "localFavouritesRepository.ListMovies").
			Msg("failed to execute query for listing movies")
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []models.FavouriteMovie

	for rows.Next() {
		var (
			movie     models.FavouriteMovie
			genreIDs  sql.NullString
			providers sql.NullString
			createdAt string
		)

		scanErr := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.OriginalTitle,
			&movie.Overview,
			&movie.PosterPath,
			&movie.BackdropPath,
			&movie.ReleaseDate,
			&movie.Runtime,
			&movie.Video,
			&movie.Adult,
			&movie.Popularity,
			&movie.VoteAverage,
			&movie.VoteCount,
			&genreIDs,
			&providers,
			&movie.OriginalLanguage,
			&createdAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localFavouritesRepository.ListMovies").
				Msg("failed to scan movie row")
			return nil, fmt.Errorf("failed to scan movie row: %w", scanErr)
		}

		if err := unmarshalColumn(genreIDs, &movie.GenreIDs); err != nil {
			return nil, fmt.Errorf("failed to decode movie genre ids (id=%d): %w", movie.ID, err)
		}
		if err := unmarshalColumn(providers, &movie.Providers); err != nil {
			return nil, fmt.Errorf("failed to decode movie providers (id=%d): %w", movie.ID, err)
		}
		movie.CreatedAt, err = parseCreatedAt(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse movie created_at (id=%d): %w", movie.ID, err)
		}

		movies = append(movies, movie)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localFavouritesRepository.ListMovies").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating movie rows: %w", rowsErr)
	}

	return movies, nil
}

func (l *localFavouritesRepository) ListShows(ctx context.Context) ([]models.FavouriteShow, error) {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, selectAllShows)
	if err != nil {
		log.Err(err).
			Str("func", "localFavouritesRepository.ListShows").
			Msg("failed to execute query for listing shows")
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()

	var shows []models.FavouriteShow

	for rows.Next() {
		var (
			show           models.FavouriteShow
			episodeRuntime sql.NullString
			genreIDs       sql.NullString
			seasons        sql.NullString
			providers      sql.NullString
			createdAt      string
		)

		scanErr := rows.Scan(
			&show.ID,
			&show.Name,
			&show.OriginalName,
			&show.Overview,
			&show.PosterPath,
			&show.BackdropPath,
			&show.FirstAirDate,
			&show.LastAirDate,
			&episodeRuntime,
			&show.InProduction,
			&show.NumberOfSeasons,
			&show.NumberOfEpisodes,
			&show.VoteAverage,
			&show.VoteCount,
			&show.Status,
			&show.Tagline,
			&show.Type,
			&genreIDs,
			&seasons,
			&providers,
			&createdAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localFavouritesRepository.ListShows").
				Msg("failed to scan show row")
			return nil, fmt.Errorf("failed to scan show row: %w", scanErr)
		}

		if err := unmarshalColumn(episodeRuntime, &show.EpisodeRuntime); err != nil {
			return nil, fmt.Errorf("failed to decode show episode runtimes (id=%d): %w", show.ID, err)
		}
		if err := unmarshalColumn(genreIDs, &show.GenreIDs); err != nil {
			return nil, fmt.Errorf("failed to decode show genre ids (id=%d): %w", show.ID, err)
		}
		if err := unmarshalColumn(seasons, &show.Seasons); err != nil {
			return nil, fmt.Errorf("failed to decode show seasons (id=%d): %w", show.ID, err)
		}
		if err := unmarshalColumn(providers, &show.Providers); err != nil {
			return nil, fmt.Errorf("failed to decode show providers (id=%d): %w", show.ID, err)
		}
		show.CreatedAt, err = parseCreatedAt(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse show created_at (id=%d): %w", show.ID, err)
		}

		shows = append(shows, show)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localFavouritesRepository.ListShows").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating show rows: %w", rowsErr)
	}

	return shows, nil
}

func (l *localFavouritesRepository) ListPeople(ctx context.Context) ([]models.FavouritePerson, error) {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, selectAllPeople)
	if err != nil {
		log.Err(err).
			Str("func", "localFavouritesRepository.ListPeople").
			Msg("failed to execute query for listing people")
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []models.FavouritePerson

	for rows.Next() {
		var (
			person       models.FavouritePerson
			alsoKnownAs  sql.NullString
			movieCredits sql.NullString
			showCredits  sql.NullString
			createdAt    string
		)

		scanErr := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Adult,
			&alsoKnownAs,
			&person.ProfilePath,
			&person.Biography,
			&person.Birthday,
			&person.Deathday,
			&person.Gender,
			&person.IMDbID,
			&person.PlaceOfBirth,
			&person.KnownForDepartment,
			&person.Popularity,
			&movieCredits,
			&showCredits,
			&createdAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localFavouritesRepository.ListPeople").
				Msg("failed to scan person row")
			return nil, fmt.Errorf("failed to scan person row: %w", scanErr)
		}

		if err := unmarshalColumn(alsoKnownAs, &person.AlsoKnownAs); err != nil {
			return nil, fmt.Errorf("failed to decode person aliases (id=%d): %w", person.ID, err)
		}
		if err := unmarshalColumn(movieCredits, &person.MovieCredits); err != nil {
			return nil, fmt.Errorf("failed to decode person movie credits (id=%d): %w", person.ID, err)
		}
		if err := unmarshalColumn(showCredits, &person.ShowCredits); err != nil {
			return nil, fmt.Errorf("failed to decode person show credits (id=%d): %w", person.ID, err)
		}
		person.CreatedAt, err = parseCreatedAt(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse person created_at (id=%d): %w", person.ID, err)
		}

		people = append(people, person)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localFavouritesRepository.ListPeople").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating person rows: %w", rowsErr)
	}

	return people, nil
}

func (l *localFavouritesRepository) AddMovie(ctx context.Context, movie models.FavouriteMovie) error {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return fmt.Errorf("failed to add movie: %w", err)
	}

	genreIDs, err := marshalColumn(movie.GenreIDs, len(movie.GenreIDs) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode movie genre ids (id=%d): %w", movie.ID, err)
	}
	providers, err := marshalColumn(movie.Providers, movie.Providers != nil)
	if err != nil {
		return fmt.Errorf("failed to encode movie providers (id=%d): %w", movie.ID, err)
	}

	_, err = l.DB.ExecContext(ctx, insertMovie,
		movie.ID,
		movie.Title,
		movie.OriginalTitle,
		movie.Overview,
		movie.PosterPath,
		movie.BackdropPath,
		movie.ReleaseDate,
		movie.Runtime,
		movie.Video,
		movie.Adult,
		movie.Popularity,
		movie.VoteAverage,
		movie.VoteCount,
		genreIDs,
		providers,
		movie.OriginalLanguage,
		stampCreatedAt(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("movie id=%d: %w", movie.ID, ErrDuplicateFavourite)
		}
		log.Err(err).
			Str("func", "localFavouritesRepository.AddMovie").
			Int64("id", movie.ID).
			Msg("failed to execute insert for movie")
		return fmt.Errorf("failed to add movie (id=%d): %w", movie.ID, err)
	}

	return nil
}

func (l *localFavouritesRepository) AddShow(ctx context.Context, show models.FavouriteShow) error {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return fmt.Errorf("failed to add show: %w", err)
	}

	episodeRuntime, err := marshalColumn(show.EpisodeRuntime, len(show.EpisodeRuntime) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode show episode runtimes (id=%d): %w", show.ID, err)
	}
	genreIDs, err := marshalColumn(show.GenreIDs, len(show.GenreIDs) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode show genre ids (id=%d): %w", show.ID, err)
	}
	seasons, err := marshalColumn(show.Seasons, len(show.Seasons) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode show seasons (id=%d): %w", show.ID, err)
	}
	providers, err := marshalColumn(show.Providers, show.Providers != nil)
	if err != nil {
		return fmt.Errorf("failed to encode show providers (id=%d): %w", show.ID, err)
	}

	_, err = l.DB.ExecContext(ctx, insertShow,
		show.ID,
		show.Name,
		show.OriginalName,
		show.Overview,
		show.PosterPath,
		show.BackdropPath,
		show.FirstAirDate,
		show.LastAirDate,
		episodeRuntime,
		show.InProduction,
		show.NumberOfSeasons,
		show.NumberOfEpisodes,
		show.VoteAverage,
		show.VoteCount,
		show.Status,
		show.Tagline,
		show.Type,
		genreIDs,
		seasons,
		providers,
		stampCreatedAt(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("show id=%d: %w", show.ID, ErrDuplicateFavourite)
		}
		log.Err(err).
			Str("func", "localFavouritesRepository.AddShow").
			Int64("id", show.ID).
			Msg("failed to execute insert for show")
		return fmt.Errorf("failed to add show (id=%d): %w", show.ID, err)
	}

	return nil
}

func (l *localFavouritesRepository) AddPerson(ctx context.Context, person models.FavouritePerson) error {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return fmt.Errorf("failed to add person: %w", err)
	}

	alsoKnownAs, err := marshalColumn(person.AlsoKnownAs, len(person.AlsoKnownAs) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode person aliases (id=%d): %w", person.ID, err)
	}
	movieCredits, err := marshalColumn(person.MovieCredits, len(person.MovieCredits) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode person movie credits (id=%d): %w", person.ID, err)
	}
	showCredits, err := marshalColumn(person.ShowCredits, len(person.ShowCredits) > 0)
	if err != nil {
		return fmt.Errorf("failed to encode person show credits (id=%d): %w", person.ID, err)
	}

	_, err = l.DB.ExecContext(ctx, insertPerson,
		person.ID,
		person.Name,
		person.Adult,
		alsoKnownAs,
		person.ProfilePath,
		person.Biography,
		person.Birthday,
		person.Deathday,
		person.Gender,
		person.IMDbID,
		person.PlaceOfBirth,
		person.KnownForDepartment,
		person.Popularity,
		movieCredits,
		showCredits,
		stampCreatedAt(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("person id=%d: %w", person.ID, ErrDuplicateFavourite)
		}
		log.Err(err).
			Str("func", "localFavouritesRepository.AddPerson").
			Int64("id", person.ID).
			Msg("failed to execute insert for person")
		return fmt.Errorf("failed to add person (id=%d): %w", person.ID, err)
	}

	return nil
}

func (l *localFavouritesRepository) RemoveMovie(ctx context.Context, id int64) (bool, error) {
	return l.remove(ctx, "localFavouritesRepository.RemoveMovie", deleteMovie, id)
}

func (l *localFavouritesRepository) RemoveShow(ctx context.Context, id int64) (bool, error) {
	return l.remove(ctx, "localFavouritesRepository.RemoveShow", deleteShow, id)
}

func (l *localFavouritesRepository) RemovePerson(ctx context.Context, id int64) (bool, error) {
	return l.remove(ctx, "localFavouritesRepository.RemovePerson", deletePerson, id)
}

// remove executes a single-row DELETE and reports whether a row was deleted.
// A missing id is not an error.
func (l *localFavouritesRepository) remove(ctx context.Context, funcName, query string, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return false, fmt.Errorf("failed to remove favourite: %w", err)
	}

	result, err := l.DB.ExecContext(ctx, query, id)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("id", id).
			Msg("failed to execute delete for favourite")
		return false, fmt.Errorf("failed to remove favourite (id=%d): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("id", id).
			Msg("failed to get rows affected after delete")
		return false, fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}

	return rowsAffected > 0, nil
}

func (l *localFavouritesRepository) WipeAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := l.checkInitialised(); err != nil {
		return fmt.Errorf("failed to wipe favourites: %w", err)
	}

	for _, query := range []string{wipeMovies, wipeShows, wipePeople} {
		if _, err := l.DB.ExecContext(ctx, query); err != nil {
			log.Err(err).
				Str("func", "localFavouritesRepository.WipeAll").
				Msg("failed to execute wipe for favourites table")
			return fmt.Errorf("failed to wipe favourites: %w", err)
		}
	}

	return nil
}

// marshalColumn JSON-encodes a nested field for storage. When present is
// false a NULL is written instead of an empty JSON value.
func marshalColumn(v any, present bool) (sql.NullString, error) {
	if !present {
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(data), Valid: true}, nil
}

// unmarshalColumn decodes a JSON-encoded nested column into dst, leaving dst
// untouched for NULL or empty values.
func unmarshalColumn(col sql.NullString, dst any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}

// stampCreatedAt returns the local write timestamp. Every insert stamps its
// own created_at, even for records downloaded from the cloud: each store
// tracks when the record entered it, not when it was first favourited.
func stampCreatedAt() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseCreatedAt(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// isDuplicateKey reports whether err is the SQLite constraint violation
// raised by inserting an existing primary key.
func isDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
