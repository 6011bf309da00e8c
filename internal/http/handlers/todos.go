package handlers

import (
	"net/http"
	"time"

	intconfig "todoapi/internal/config"
	"todoapi/internal/domain"
	"todoapi/internal/http/middleware"
	"todoapi/internal/pagination"
	"todoapi/internal/repositories"
	"todoapi/internal/services"

	"github.com/gin-gonic/gin"
)

func todoService(c *gin.Context) services.TodoService {
	return services.TodoService{
		Users:     repositories.UserRepository{DB: intconfig.DB},
		Todos:     repositories.TodoRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

type todoResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	User        *userResponse `json:"user,omitempty"`
}

func todoView(t domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type todoConnection struct {
	Nodes      []todoResponse      `json:"nodes"`
	PageInfo   pagination.PageInfo `json:"pageInfo"`
	TotalCount int                 `json:"totalCount"`
}

// GET /api/users/:id/todos
func GetUserTodos(c *gin.Context) {
	in, err := connectionInput(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	chk := middleware.GetChecker(c)
	conn, err := todoService(c).ListForUser(chk, c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	nodes := make([]todoResponse, 0, len(conn.Nodes))
	for _, t := range conn.Nodes {
		nodes = append(nodes, todoView(t))
	}
	c.JSON(http.StatusOK, todoConnection{
		Nodes:      nodes,
		PageInfo:   conn.PageInfo,
		TotalCount: conn.TotalCount,
	})
}

// GET /api/todos/:id
func GetTodoByID(c *gin.Context) {
	chk := middleware.GetChecker(c)
	t, owner, err := todoService(c).Get(chk, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := todoView(t)
	view := userView(chk, owner)
	resp.User = &view
	c.JSON(http.StatusOK, resp)
}

// POST /api/users/:id/todos
func CreateTodo(c *gin.Context) {
	var in services.CreateTodoInput
	if !BindJSONOrError(c, &in) {
		return
	}

	chk := middleware.GetChecker(c)
	t, err := todoService(c).Create(chk, c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoView(t))
}

// PATCH /api/todos/:id
func UpdateTodo(c *gin.Context) {
	var in services.UpdateTodoInput
	if !BindJSONOrError(c, &in) {
		return
	}

	chk := middleware.GetChecker(c)
	t, err := todoService(c).Update(chk, c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoView(t))
}

// POST /api/todos/:id/complete
func CompleteTodo(c *gin.Context) {
	chk := middleware.GetChecker(c)
	t, err := todoService(c).Complete(chk, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoView(t))
}

// POST /api/todos/:id/uncomplete
func UncompleteTodo(c *gin.Context) {
	chk := middleware.GetChecker(c)
	t, err := todoService(c).Uncomplete(chk, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoView(t))
}

// DELETE /api/todos/:id
func DeleteTodo(c *gin.Context) {
	chk := middleware.GetChecker(c)
	id, err := todoService(c).Delete(chk, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
