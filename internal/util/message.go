package util

import "fmt"

// Shared response messages for the CRUD endpoints.
const (
	MsgInvalidID = "Invalid ID. Please check again."
	MsgNotFound  = "The requested resource was not found."
)

func MsgCreated(title string) string {
	return fmt.Sprintf("%s has been created successfully.", title)
}

func MsgDeleted(title string) string {
	return fmt.Sprintf("%s has been deleted successfully.", title)
}

func MsgExists(title string) string {
	return fmt.Sprintf("%s already exists. Please check again.", title)
}
