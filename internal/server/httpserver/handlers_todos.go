package httpserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.badRequest(w, "title is required")
		return
	}

	todo, err := s.todos.Create(r.Context(), userFrom(r.Context()).ID, req.Title, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, newTodoResponse(todo))
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todos.List(r.Context(), userFrom(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]todoResponse, 0, len(todos))
	for _, td := range todos {
		resp = append(resp, newTodoResponse(td))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := s.todos.Get(r.Context(), userFrom(r.Context()).ID, mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newTodoResponse(todo))
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.badRequest(w, "title is required")
		return
	}

	todo, err := s.todos.Update(r.Context(), userFrom(r.Context()).ID, mux.Vars(r)["id"],
		req.Title, req.Description, req.Completed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newTodoResponse(todo))
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := s.todos.Delete(r.Context(), userFrom(r.Context()).ID, mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearCompleted(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.todos.ClearCompleted(r.Context(), userFrom(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, clearCompletedResponse{Deleted: deleted})
}
