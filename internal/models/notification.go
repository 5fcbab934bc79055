package models

// Notification — запись журнала уведомлений. Timestamp — это человекочитаемое
// время вида "03:04 PM", между днями оно не сортируется.
type Notification struct {
	ID        int64    `json:"id"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Category  Category `json:"category"`
	Read      bool     `json:"read"`
}

type Category string

const CategoryAdded Category = "added"
const CategoryRemoved Category = "removed"
const CategoryDue Category = "due"
