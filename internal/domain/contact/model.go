package contact

import "time"

type Subject string

const (
	SubjectSupport    Subject = "soporte_tecnico"
	SubjectGeneral    Subject = "consulta_general"
	SubjectSuggestion Subject = "sugerencia"
	SubjectOther      Subject = "otro"
)

// Message is a support request sent from the public contact form.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Subject   Subject   `gorm:"type:varchar(20);not null" json:"subject"`
	Body      string    `gorm:"column:message;type:text;not null" json:"message"`
	Resolved  bool      `gorm:"not null;default:false;index" json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "contact_messages"
}

type MessageInput struct {
	Name    string  `json:"name" form:"name" binding:"required,max=100"`
	Email   string  `json:"email" form:"email" binding:"required,email"`
	Subject Subject `json:"subject" form:"subject" binding:"required,oneof=soporte_tecnico consulta_general sugerencia otro"`
	Message string  `json:"message" form:"message" binding:"required"`
}
