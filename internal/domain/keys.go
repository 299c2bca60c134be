package domain

type CtxKey string

const (
	KeyUserID   CtxKey = "UserID"
	KeyUserRole CtxKey = "Role"
)

// Session keys. The staging slot holds exactly one in-progress registration
// per session and is overwritten, not merged, on repeated temp-saves.
const (
	SessionKeyUserType   = "user_type"
	SessionKeyUserID     = "user_id"
	SessionKeyUserName   = "user_name"
	SessionKeyStagedData = "registration_data"
)

// Session identity roles
const (
	RoleEmployee = "employee"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)
