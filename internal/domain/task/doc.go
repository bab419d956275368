// Package task defines the Task entity, its status ordering, its calendar due
// date and the validation rules applied on every write path.
package task
