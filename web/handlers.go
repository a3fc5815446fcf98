package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/EyalPasha/Redzone-Companion-My-Players/controller"
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

// renderError writes the error as a single human-readable message. Failures
// from the upstream gateways arrive already wrapped with their source, so the
// message alone tells the user which side broke.
func renderError(render *render.Render, w http.ResponseWriter, status int, err error) {
	render.JSON(w, status, map[string]string{"error": err.Error()})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"service": "redzone companion"})
	}
}

func weekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := ctrl.ResolveEffectiveWeek(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"week": week})
	}
}

func getLineupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Lineups())
	}
}

func refreshLineupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineups, err := ctrl.RefreshLineups(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, lineups)
	}
}

func getGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.Games(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func refreshGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.RefreshGames(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func saveGameConfigHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Visible     bool   `json:"visible"`
			CustomOrder int    `json:"customOrder"`
			CustomLabel string `json:"customLabel"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing request: %w", err))
			return
		}

		cfg := model.GameConfig{
			GameID:      chi.URLParam(r, "gameID"),
			Visible:     body.Visible,
			CustomOrder: body.CustomOrder,
			CustomLabel: body.CustomLabel,
		}
		if err := ctrl.SaveGameConfig(r.Context(), cfg); err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, cfg)
	}
}

func windowVisibilityHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Window string `json:"window"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing request: %w", err))
			return
		}

		window := model.GameWindow(body.Window)
		switch window {
		case model.WindowEarly, model.WindowLate, model.WindowOther:
		default:
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("unknown window: %s", body.Window))
			return
		}

		if err := ctrl.ApplyWindowVisibility(r.Context(), window); err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			LeagueID string `json:"leagueId"`
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing request: %w", err))
			return
		}

		cfg, err := ctrl.AddLeague(r.Context(), body.LeagueID, body.Username)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, http.StatusCreated, cfg)
	}
}

func discoverLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		season := r.URL.Query().Get("season")

		leagues, err := ctrl.GetLeaguesFromPlatform(r.Context(), username, season)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func leagueIDParam(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
	if err != nil {
		return 0, fmt.Errorf("error parsing league id: %w", err)
	}
	return int32(id), nil
}

func renameLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		var body struct {
			Nickname string `json:"nickname"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing request: %w", err))
			return
		}

		cfg, err := ctrl.RenameLeague(r.Context(), id, body.Nickname)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, cfg)
	}
}

func setLeagueHiddenHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		var body struct {
			Hidden bool `json:"hidden"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing request: %w", err))
			return
		}

		if err := ctrl.SetLeagueHidden(r.Context(), id, body.Hidden); err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func removeLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		if err := ctrl.RemoveLeague(r.Context(), id); err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]any{
			"selectedGame": ctrl.SelectedGame(),
			"view":         ctrl.View(),
		})
	}
}

func setViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SelectedGame *int    `json:"selectedGame"`
			View         *string `json:"view"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing request: %w", err))
			return
		}

		if body.SelectedGame != nil {
			ctrl.SetSelectedGame(*body.SelectedGame)
		}
		if body.View != nil {
			ctrl.SetView(*body.View)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func refreshPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func clearCacheHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.ClearCache(); err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
