package services

import (
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// CommentView is a comment row joined with its author, its film and its vote
// totals. Field names follow the legacy aggregation payload.
type CommentView struct {
	ID        uint64 `gorm:"column:idcomentarios" json:"idcomentarios"`
	UserName  string `gorm:"column:nome_usuario" json:"nome_usuario"`
	UserEmail string `gorm:"column:email_usuario" json:"email_usuario"`
	Text      string `gorm:"column:descricao" json:"descricao"`
	FilmName  string `gorm:"column:nome_filme" json:"nome_filme"`
	ProfileID uint64 `gorm:"column:perfil_idperfil" json:"perfil_idperfil"`
	FilmID    uint64 `gorm:"column:filmes_idfilmes" json:"filmes_idfilmes"`
	Likes     int64  `gorm:"column:totalLikes" json:"totalLikes"`
	Dislikes  int64  `gorm:"column:totalDislikes" json:"totalDislikes"`
}

const commentViewBase = `
	SELECT c.idcomentarios,
	       p.nome AS nome_usuario,
	       p.email AS email_usuario,
	       c.descricao,
	       f.nomeFilme AS nome_filme,
	       c.perfil_idperfil,
	       c.filmes_idfilmes,
	       COALESCE(SUM(ac.positiva), 0) AS totalLikes,
	       COALESCE(SUM(ac.negativa), 0) AS totalDislikes
	  FROM comentarios c
	 INNER JOIN perfil p ON c.perfil_idperfil = p.idperfil
	 INNER JOIN filmes f ON c.filmes_idfilmes = f.idfilmes
	  LEFT JOIN avaliacaoComentarios ac
	         ON ac.comentarios_idcomentarios = c.idcomentarios
	        AND ac.comentarios_perfil_idperfil = c.perfil_idperfil
	        AND ac.comentarios_filmes_idfilmes = c.filmes_idfilmes`

const commentViewGroup = `
	 GROUP BY c.idcomentarios, p.nome, p.email, c.descricao, f.nomeFilme,
	          c.perfil_idperfil, c.filmes_idfilmes
	 ORDER BY c.idcomentarios`

func CreateComment(db *gorm.DB, profileID, filmID uint64, text string) (*models.Comment, error) {
	comment := models.Comment{
		ProfileID: profileID,
		FilmID:    filmID,
		Text:      text,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns every comment with author, film and vote totals.
func ListComments(db *gorm.DB) ([]CommentView, error) {
	var views []CommentView
	if err := db.Raw(commentViewBase + commentViewGroup).Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// ListCommentsByFilm returns the aggregated comments of one film.
func ListCommentsByFilm(db *gorm.DB, filmID uint64) ([]CommentView, error) {
	var views []CommentView
	err := db.Raw(commentViewBase+` WHERE c.filmes_idfilmes = ?`+commentViewGroup, filmID).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListCommentsByProfile returns the aggregated comments of one profile.
func ListCommentsByProfile(db *gorm.DB, profileID uint64) ([]CommentView, error) {
	var views []CommentView
	err := db.Raw(commentViewBase+` WHERE c.perfil_idperfil = ?`+commentViewGroup, profileID).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// UpdateComment rewrites the text of an owner's comment. profileID zero means
// an admin caller and skips the ownership condition.
func UpdateComment(db *gorm.DB, id, filmID, profileID uint64, text string) error {
	query := db.Model(&models.Comment{}).
		Where("idcomentarios = ? AND filmes_idfilmes = ?", id, filmID)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Update("descricao", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteComment removes one comment and its votes in a transaction.
// profileID zero means an admin caller and skips the ownership condition.
func DeleteComment(db *gorm.DB, id, filmID, profileID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("idcomentarios = ? AND filmes_idfilmes = ?", id, filmID)
		if profileID != 0 {
			query = query.Where("perfil_idperfil = ?", profileID)
		}
		result := query.Delete(&models.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Exec(`DELETE FROM avaliacaoComentarios
			WHERE comentarios_idcomentarios = ? AND comentarios_filmes_idfilmes = ?`,
			id, filmID).Error
	})
}

// DeleteCommentsByFilm is an admin sweep of every comment on one film,
// votes included.
func DeleteCommentsByFilm(db *gorm.DB, filmID uint64) (int64, error) {
	var affectedRows int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM avaliacaoComentarios
			WHERE comentarios_filmes_idfilmes = ?`, filmID).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM comentarios WHERE filmes_idfilmes = ?`, filmID)
		if result.Error != nil {
			return result.Error
		}
		affectedRows = result.RowsAffected
		return nil
	})
	return affectedRows, err
}

// DeleteCommentsByProfile is an admin sweep of every comment by one profile,
// votes included.
func DeleteCommentsByProfile(db *gorm.DB, profileID uint64) (int64, error) {
	var affectedRows int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM avaliacaoComentarios
			WHERE comentarios_perfil_idperfil = ?`, profileID).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM comentarios WHERE perfil_idperfil = ?`, profileID)
		if result.Error != nil {
			return result.Error
		}
		affectedRows = result.RowsAffected
		return nil
	})
	return affectedRows, err
}
