package permissions

// Per-operation policy. Kept in one place so the whole access table can be
// read at a glance.

var (
	Viewer     = IsAuthenticated
	ListUsers  = IsAdmin
	CreateUser = Race(IsAdmin, IsGuest)
	UserRole   = IsAdmin
)

func GetUser(id string) Rule {
	return Race(IsAdmin, Chain(IsAuthenticated, IsSelf(id)))
}

func UpdateUser(id string) Rule {
	return Race(IsAdmin, Chain(IsAuthenticated, IsSelf(id)))
}

func DeleteUser(id string) Rule {
	return Race(IsAdmin, Chain(IsAuthenticated, IsSelf(id)))
}

// UserToken guards the token field of a user payload: visible to the record's
// owner, and to guests so an anonymous signup can read back its credential.
func UserToken(ownerID string) Rule {
	return Race(IsOwner(ownerID), IsGuest)
}

func UserTodos(ownerID string) Rule {
	return Race(IsAdmin, IsOwner(ownerID))
}

func CreateTodo(userID string) Rule {
	return Race(IsAdmin, Chain(IsAuthenticated, IsSelf(userID)))
}

// Todo guards operations on a resolved todo by its owner.
func Todo(ownerID string) Rule {
	return Race(IsAdmin, IsOwner(ownerID))
}
