package models

// CurrentUser is the upstream GET /me payload. Role flags gate every
// manager-only affordance in the admin area.
type CurrentUser struct {
	User_ID      int    `json:"id"`
	Username     string `json:"username"`
	Is_Superuser bool   `json:"is_superuser"`
	Is_Staff     bool   `json:"is_staff"`
	Department   string `json:"department"`
}

type User struct {
	User_ID      int    `json:"id"`
	Username     string `json:"username"`
	First_Name   string `json:"first_name"`
	Last_Name    string `json:"last_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Is_Staff     bool   `json:"is_staff"`
	Is_Superuser bool   `json:"is_superuser"`
}

// UserWrite carries account edits. Password is write-only and never
// echoed back by the upstream API.
type UserWrite struct {
	Username     *string `json:"username,omitempty"`
	First_Name   *string `json:"first_name,omitempty"`
	Last_Name    *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Department   *string `json:"department,omitempty"`
	Is_Staff     *bool   `json:"is_staff,omitempty"`
	Is_Superuser *bool   `json:"is_superuser,omitempty"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
