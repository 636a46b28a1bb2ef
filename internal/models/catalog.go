package models

import (
	"gorm.io/datatypes"
)

// Film is a catalog entry. Mutations are admin-only.
type Film struct {
	ID          uint64         `gorm:"column:idfilmes;primaryKey;autoIncrement" json:"idfilmes"`
	Name        string         `gorm:"column:nomeFilme;size:255;not null" json:"nomeFilme"`
	ReleaseDate datatypes.Date `gorm:"column:dataLanc" json:"dataLanc"`
	Synopsis    string         `gorm:"column:sinopse;type:text" json:"sinopse,omitempty"`
	Rating      string         `gorm:"column:classInd;size:45" json:"classInd,omitempty"`
	Photo       []byte         `gorm:"column:fotoFilme" json:"-"`
}

func (Film) TableName() string {
	return "filmes"
}

// Actor is a catalog entry for a performer.
type Actor struct {
	ID        uint64         `gorm:"column:idatores;primaryKey;autoIncrement" json:"idatores"`
	Name      string         `gorm:"column:nome;size:255;not null" json:"nome"`
	BirthDate datatypes.Date `gorm:"column:dataNasc" json:"dataNasc"`
	Alive     bool           `gorm:"column:vivo;not null;default:true" json:"vivo"`
	Photo     []byte         `gorm:"column:fotoAtor" json:"-"`
}

func (Actor) TableName() string {
	return "atores"
}

// Director is a name-only catalog entry.
type Director struct {
	ID   uint64 `gorm:"column:iddiretor;primaryKey;autoIncrement" json:"iddiretor"`
	Name string `gorm:"column:nome;size:255;not null" json:"nome"`
}

func (Director) TableName() string {
	return "diretor"
}

// Producer is a name-only catalog entry.
type Producer struct {
	ID   uint64 `gorm:"column:idprodutor;primaryKey;autoIncrement" json:"idprodutor"`
	Name string `gorm:"column:nome;size:255;not null" json:"nome"`
}

func (Producer) TableName() string {
	return "produtor"
}

// Genre is a name-only catalog entry.
type Genre struct {
	ID   uint64 `gorm:"column:idgeneros;primaryKey;autoIncrement" json:"idgeneros"`
	Name string `gorm:"column:nome;size:255;not null" json:"nome"`
}

func (Genre) TableName() string {
	return "generos"
}

// The four catalog join tables below carry nothing beyond the pair of foreign
// keys. Both columns form the primary key, so a duplicate relation is a
// storage conflict rather than a silent second row.

// FilmActor links a film to a cast member.
type FilmActor struct {
	FilmID  uint64 `gorm:"column:filmes_idfilmes;primaryKey" json:"filmes_idfilmes"`
	ActorID uint64 `gorm:"column:atores_idatores;primaryKey" json:"atores_idatores"`
}

func (FilmActor) TableName() string {
	return "atoresFilmes"
}

// FilmDirector links a film to a director.
type FilmDirector struct {
	FilmID     uint64 `gorm:"column:filmes_idfilmes;primaryKey" json:"filmes_idfilmes"`
	DirectorID uint64 `gorm:"column:diretor_iddiretor;primaryKey" json:"diretor_iddiretor"`
}

func (FilmDirector) TableName() string {
	return "diretorFilmes"
}

// FilmProducer links a film to a producer.
type FilmProducer struct {
	FilmID     uint64 `gorm:"column:filmes_idfilmes;primaryKey" json:"filmes_idfilmes"`
	ProducerID uint64 `gorm:"column:produtor_idprodutor;primaryKey" json:"produtor_idprodutor"`
}

func (FilmProducer) TableName() string {
	return "produtorFilmes"
}

// FilmGenre links a film to a genre.
type FilmGenre struct {
	FilmID  uint64 `gorm:"column:filmes_idfilmes;primaryKey" json:"filmes_idfilmes"`
	GenreID uint64 `gorm:"column:generos_idgeneros;primaryKey" json:"generos_idgeneros"`
}

func (FilmGenre) TableName() string {
	return "generosFilmes"
}
