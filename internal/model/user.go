package model

// User представляет пользователя приложения. Идентификатором служит subject
// внешнего провайдера аутентификации, поэтому id - строка, а не serial.
type User struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
}
