package models

// User-generated content. Every row here carries exactly one owning profile
// foreign key (perfil_idperfil); that column is what the ownership policy
// checks, and what the cascading account deletion sweeps.

// FilmSuggestion is a user proposal for a new film.
type FilmSuggestion struct {
	ID        uint64 `gorm:"column:idsugestoesFilmes;primaryKey;autoIncrement" json:"idsugestoesFilmes"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;not null;index" json:"perfil_idperfil"`
	Name      string `gorm:"column:nomeFilme;size:255;not null" json:"nomeFilme"`
	Synopsis  string `gorm:"column:sinopse;type:text" json:"sinopse,omitempty"`
}

func (FilmSuggestion) TableName() string {
	return "sugestoesFilmes"
}

// ActorSuggestion is a user proposal for a new actor.
type ActorSuggestion struct {
	ID        uint64 `gorm:"column:idsugestoesAtores;primaryKey;autoIncrement" json:"idsugestoesAtores"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;not null;index" json:"perfil_idperfil"`
	Name      string `gorm:"column:nome;size:255;not null" json:"nome"`
}

func (ActorSuggestion) TableName() string {
	return "sugestoesAtores"
}

// Comment is a free-text note by one profile about one film. In join contexts
// (comment evaluations) a comment is identified by the composite
// (idcomentarios, perfil_idperfil, filmes_idfilmes), not by the surrogate id
// alone; that triple is what AvaliacaoComentarios stores.
type Comment struct {
	ID        uint64 `gorm:"column:idcomentarios;primaryKey;autoIncrement" json:"idcomentarios"`
	Text      string `gorm:"column:descricao;type:text;not null" json:"descricao"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;not null;index" json:"perfil_idperfil"`
	FilmID    uint64 `gorm:"column:filmes_idfilmes;not null;index" json:"filmes_idfilmes"`
}

func (Comment) TableName() string {
	return "comentarios"
}

// FilmEvaluation is a like/dislike verdict on a film. The legacy columns are
// literally named `like` and `dislike`; GORM quotes them per dialect.
type FilmEvaluation struct {
	ID        uint64 `gorm:"column:idavaliacao;primaryKey;autoIncrement" json:"idavaliacao"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;not null;uniqueIndex:uq_avaliacao_filme" json:"perfil_idperfil"`
	FilmID    uint64 `gorm:"column:filmes_idfilmes;not null;uniqueIndex:uq_avaliacao_filme" json:"filmes_idfilmes"`
	Positive  bool   `gorm:"column:like;not null;default:false" json:"positiva"`
	Negative  bool   `gorm:"column:dislike;not null;default:false" json:"negativa"`
}

func (FilmEvaluation) TableName() string {
	return "avaliacaoFilmes"
}

// ActorEvaluation is a like/dislike verdict on an actor.
type ActorEvaluation struct {
	ID        uint64 `gorm:"column:idavaliacao;primaryKey;autoIncrement" json:"idavaliacao"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;not null;uniqueIndex:uq_avaliacao_ator" json:"perfil_idperfil"`
	ActorID   uint64 `gorm:"column:atores_idatores;not null;uniqueIndex:uq_avaliacao_ator" json:"atores_idatores"`
	Positive  bool   `gorm:"column:positiva;not null;default:false" json:"positiva"`
	Negative  bool   `gorm:"column:negativa;not null;default:false" json:"negativa"`
}

func (ActorEvaluation) TableName() string {
	return "avaliacaoAtores"
}

// FilmSuggestionEvaluation is a like/dislike verdict on a film suggestion.
type FilmSuggestionEvaluation struct {
	ID           uint64 `gorm:"column:idavaliacao;primaryKey;autoIncrement" json:"idavaliacao"`
	ProfileID    uint64 `gorm:"column:perfil_idperfil;not null;uniqueIndex:uq_avaliacao_sugfilme" json:"perfil_idperfil"`
	SuggestionID uint64 `gorm:"column:sugestoesFilmes_idsugestoesFilmes;not null;uniqueIndex:uq_avaliacao_sugfilme" json:"sugestoesFilmes_idsugestoesFilmes"`
	Positive     bool   `gorm:"column:positiva;not null;default:false" json:"positiva"`
	Negative     bool   `gorm:"column:negativa;not null;default:false" json:"negativa"`
}

func (FilmSuggestionEvaluation) TableName() string {
	return "avaliacaoSugsFilmes"
}

// ActorSuggestionEvaluation is a like/dislike verdict on an actor suggestion.
type ActorSuggestionEvaluation struct {
	ID           uint64 `gorm:"column:idavaliacao;primaryKey;autoIncrement" json:"idavaliacao"`
	ProfileID    uint64 `gorm:"column:perfil_idperfil;not null;uniqueIndex:uq_avaliacao_sugator" json:"perfil_idperfil"`
	SuggestionID uint64 `gorm:"column:sugestoesAtores_idsugestoesAtores;not null;uniqueIndex:uq_avaliacao_sugator" json:"sugestoesAtores_idsugestoesAtores"`
	Positive     bool   `gorm:"column:positiva;not null;default:false" json:"positiva"`
	Negative     bool   `gorm:"column:negativa;not null;default:false" json:"negativa"`
}

func (ActorSuggestionEvaluation) TableName() string {
	return "avaliacaoSugsAtores"
}

// CommentEvaluation is a like/dislike verdict on a comment. The target is the
// comment's full composite key; comentarios_perfil_idperfil is the comment
// author, perfil_idperfil the evaluator.
type CommentEvaluation struct {
	ID              uint64 `gorm:"column:idavaliacao;primaryKey;autoIncrement" json:"idavaliacao"`
	ProfileID       uint64 `gorm:"column:perfil_idperfil;not null;uniqueIndex:uq_avaliacao_comentario" json:"perfil_idperfil"`
	CommentID       uint64 `gorm:"column:comentarios_idcomentarios;not null;uniqueIndex:uq_avaliacao_comentario" json:"comentarios_idcomentarios"`
	CommentAuthorID uint64 `gorm:"column:comentarios_perfil_idperfil;not null;uniqueIndex:uq_avaliacao_comentario" json:"comentarios_perfil_idperfil"`
	CommentFilmID   uint64 `gorm:"column:comentarios_filmes_idfilmes;not null;uniqueIndex:uq_avaliacao_comentario" json:"comentarios_filmes_idfilmes"`
	Positive        bool   `gorm:"column:positiva;not null;default:false" json:"positiva"`
	Negative        bool   `gorm:"column:negativa;not null;default:false" json:"negativa"`
}

func (CommentEvaluation) TableName() string {
	return "avaliacaoComentarios"
}

// FavoriteFilm links a profile to a film it favorited.
type FavoriteFilm struct {
	FilmID    uint64 `gorm:"column:filmes_idfilmes;primaryKey" json:"filmes_idfilmes"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;primaryKey" json:"perfil_idperfil"`
}

func (FavoriteFilm) TableName() string {
	return "favoritosFilmes"
}

// FavoriteActor links a profile to an actor it favorited.
type FavoriteActor struct {
	ActorID   uint64 `gorm:"column:atores_idatores;primaryKey" json:"atores_idatores"`
	ProfileID uint64 `gorm:"column:perfil_idperfil;primaryKey" json:"perfil_idperfil"`
}

func (FavoriteActor) TableName() string {
	return "favoritosAtores"
}
