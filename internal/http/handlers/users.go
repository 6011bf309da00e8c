package handlers

import (
	"net/http"
	"time"

	intconfig "todoapi/internal/config"
	"todoapi/internal/domain"
	"todoapi/internal/http/middleware"
	"todoapi/internal/pagination"
	"todoapi/internal/permissions"
	"todoapi/internal/repositories"
	"todoapi/internal/services"

	"github.com/gin-gonic/gin"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		Users:       repositories.UserRepository{DB: intconfig.DB},
		TokenSecret: []byte(intconfig.LoadEnv().JWTSecret),
		RequestID:   middleware.GetRequestID(c),
	}
}

// userResponse serializes a user with field-level visibility: role only for
// admins, token only for the record's owner or a guest caller (so an
// anonymous signup can read back its credential). Denied fields are omitted
// rather than erroring the whole response.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func userView(chk *permissions.Checker, u domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if chk.Check(permissions.UserRole) == nil {
		resp.Role = string(u.Role)
	}
	if chk.Check(permissions.UserToken(u.ID)) == nil {
		resp.Token = u.Token
	}
	return resp
}

type userConnection struct {
	Nodes      []userResponse      `json:"nodes"`
	PageInfo   pagination.PageInfo `json:"pageInfo"`
	TotalCount int                 `json:"totalCount"`
}

// GET /api/viewer
func Viewer(c *gin.Context) {
	chk := middleware.GetChecker(c)
	u, err := userService(c).Viewer(chk)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(chk, u))
}

// GET /api/users
func GetUsers(c *gin.Context) {
	in, err := connectionInput(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	chk := middleware.GetChecker(c)
	conn, err := userService(c).List(chk, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	nodes := make([]userResponse, 0, len(conn.Nodes))
	for _, u := range conn.Nodes {
		nodes = append(nodes, userView(chk, u))
	}
	c.JSON(http.StatusOK, userConnection{
		Nodes:      nodes,
		PageInfo:   conn.PageInfo,
		TotalCount: conn.TotalCount,
	})
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	chk := middleware.GetChecker(c)
	u, err := userService(c).Get(chk, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(chk, u))
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var in services.CreateUserInput
	if !BindJSONOrError(c, &in) {
		return
	}

	chk := middleware.GetChecker(c)
	u, err := userService(c).Create(chk, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userView(chk, u))
}

// PATCH /api/users/:id
func UpdateUser(c *gin.Context) {
	var in services.UpdateUserInput
	if !BindJSONOrError(c, &in) {
		return
	}

	chk := middleware.GetChecker(c)
	u, err := userService(c).Update(chk, c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(chk, u))
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	chk := middleware.GetChecker(c)
	id, err := userService(c).Delete(chk, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
