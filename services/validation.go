package services

import "clickexpress-cms/models"

// StructValidator runs the tag-level rules on a request struct. Services
// merge its report with their own domain rules so one response carries
// every violated constraint.
type StructValidator interface {
	ValidateStruct(s interface{}) models.FieldErrors
}
