package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, newUserResponse(userFrom(r.Context())))
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userFrom(r.Context()).ID, req.Nickname, req.AvatarKey)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		s.badRequest(w, "old_password and new_password are required")
		return
	}

	if err := s.users.ChangePassword(r.Context(), userFrom(r.Context()).ID, req.OldPassword, req.NewPassword); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAvatarUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.users.AvatarUploadURL(r.Context(), userFrom(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, avatarUploadResponse{Key: key, UploadURL: url})
}

func (s *Server) handleAvatarDownload(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if user.AvatarKey == "" {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	url, err := s.users.AvatarDownloadURL(r.Context(), user.AvatarKey)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, avatarDownloadResponse{Key: user.AvatarKey, DownloadURL: url})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeactivateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.users.Deactivate(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user deactivated",
		"user_id", id, "by", userFrom(r.Context()).ID)
	w.WriteHeader(http.StatusNoContent)
}
