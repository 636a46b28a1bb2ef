package models

// Profile is a platform account. Admin profiles may mutate the catalog and
// act on any user-generated content; regular profiles only on their own.
type Profile struct {
	ID        uint64 `gorm:"column:idperfil;primaryKey;autoIncrement" json:"idperfil"`
	Name      string `gorm:"column:nome;size:255;not null" json:"nome"`
	Email     string `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Biography string `gorm:"column:biografia;type:text" json:"biografia,omitempty"`
	Password  string `gorm:"column:senha;size:255;not null" json:"-"`
	Photo     []byte `gorm:"column:fotoPerfil" json:"-"`
	Admin     bool   `gorm:"column:adm;not null;default:false" json:"adm"`
}

// TableName preserves the legacy schema name.
func (Profile) TableName() string {
	return "perfil"
}
