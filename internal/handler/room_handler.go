package handler

import (
	"errors"
	"net/http"

	"roomchat/internal/app/room"
	"roomchat/internal/pkg/errs"
	"roomchat/internal/pkg/logx"
	"roomchat/internal/pkg/req"
	"roomchat/internal/pkg/resp"
)

type CreateRoomInput struct {
	Name string `json:"name"`
}

// HandleCreateRoom creates a new room for the authenticated caller.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateRoomInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Name == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		rm, err := deps.Rooms.Create(r.Context(), input.Name)
		if err != nil {
			if errors.Is(err, room.ErrNameTaken) {
				logx.Warn("room creation conflict: name already exists", "name", input.Name)
				resp.RespondError(w, r, errs.NewError(errs.ErrRoomNameExists))
				return
			}

			logx.Error(err, "failed to create room in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, rm)
	}
}

// HandleListRooms returns every room in insertion order.
func HandleListRooms(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := deps.Rooms.List(r.Context())
		if err != nil {
			logx.Error(err, "failed to list rooms")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, rooms)
	}
}
