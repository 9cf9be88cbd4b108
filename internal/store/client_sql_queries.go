// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package store

const (
	insertMovie = `
		INSERT INTO liked_movies (
			id,
			title,
			original_title,
			overview,
			poster_path,
			backdrop_path,
			release_date,
			runtime,
			video,
			adult,
			popularity,
			vote_average,
			vote_count,
			genre_ids,
			providers,
			original_language,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectAllMovies = `
		SELECT
			id,
			title,
			original_title,
			overview,
			poster_path,
			backdrop_path,
			release_date,
			runtime,
			video,
			adult,
			popularity,
			vote_average,
			vote_count,
			genre_ids,
			providers,
			original_language,
			created_at
		FROM liked_movies
		ORDER BY created_at DESC;`

	deleteMovie = `DELETE FROM liked_movies WHERE id = ?;`

	insertShow = `
		INSERT INTO liked_shows (
			id,
			name,
			original_name,
			overview,
			poster_path,
			backdrop_path,
			first_air_date,
			last_air_date,
			episode_runtime,
			in_production,
			number_of_seasons,
			number_of_episodes,
			vote_average,
			vote_count,
			status,
			tagline,
			type,
			genre_ids,
			seasons,
			providers,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectAllShows = `
		SELECT
			id,
			name,
			original_name,
			overview,
			poster_path,
			backdrop_path,
			first_air_date,
			last_air_date,
			episode_runtime,
			in_production,
			number_of_seasons,
			number_of_episodes,
			vote_average,
			vote_count,
			status,
			tagline,
			type,
			genre_ids,
			seasons,
			providers,
			created_at
		FROM liked_shows
		ORDER BY created_at DESC;`

	deleteShow = `DELETE FROM liked_shows WHERE id = ?;`

	insertPerson = `
		INSERT INTO liked_people (
			id,
			name,
			adult,
			also_known_as,
			profile_path,
			biography,
			birthday,
			deathday,
			gender,
			imdb_id,
			place_of_birth,
			known_for_department,
			popularity,
			movie_credits,
			show_credits,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectAllPeople = `
		SELECT
			id,
			name,
			adult,
			also_known_as,
			profile_path,
			biography,
			birthday,
			deathday,
			gender,
			imdb_id,
			place_of_birth,
			known_for_department,
			popularity,
			movie_credits,
			show_credits,
			created_at
		FROM liked_people
		ORDER BY created_at DESC;`

	deletePerson = `DELETE FROM liked_people WHERE id = ?;`

	wipeMovies = `DELETE FROM liked_movies;`
	wipeShows  = `DELETE FROM liked_shows;`
	wipePeople = `DELETE FROM liked_people;`

	selectSetting = `SELECT value FROM settings WHERE key = ?;`
	upsertSetting = `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?);`
	deleteSetting = `DELETE FROM settings WHERE key = ?;`
)
