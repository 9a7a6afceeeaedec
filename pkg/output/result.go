package output

import "fmt"

// Result is the outcome of one CLI operation.
type Result struct {
	Op      string `json:"op"`
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Exists  *bool  `json:"exists,omitempty"`
	Changed *bool  `json:"changed,omitempty"`
}

func flag(b bool) *bool { return &b }

// SetResult reports that name now holds value.
func SetResult(name, value string) Result {
	return Result{Op: "set", Name: name, Value: value, Changed: flag(true)}
}

// GetResult reports the raw value of name.
func GetResult(name, value string) Result {
	return Result{Op: "get", Name: name, Value: value, Exists: flag(true)}
}

// RemoveResult reports that name was removed.
func RemoveResult(name string) Result {
	return Result{Op: "remove", Name: name, Changed: flag(true)}
}

// ExistsResult reports list membership of value in name.
func ExistsResult(name, value string, exists bool) Result {
	return Result{Op: "exists", Name: name, Value: value, Exists: flag(exists)}
}

// AppendResult reports that value is an entry at the end of name.
func AppendResult(name, value string) Result {
	return Result{Op: "append", Name: name, Value: value}
}

// PrependResult reports that value is an entry at the front of name.
func PrependResult(name, value string) Result {
	return Result{Op: "prepend", Name: name, Value: value}
}

// RemoveFromListResult reports whether value was dropped from name.
func RemoveFromListResult(name, value string, removed bool) Result {
	return Result{Op: "remove-from-list", Name: name, Value: value, Changed: flag(removed)}
}

// Line returns the plain text form of r.
func (r Result) Line() string {
	switch r.Op {
	case "set":
		return fmt.Sprintf("%s=%s", r.Name, r.Value)
	case "get":
		return r.Value
	case "remove":
		return fmt.Sprintf("%s removed", r.Name)
	case "exists":
		return fmt.Sprintf("%t", r.Exists != nil && *r.Exists)
	case "append":
		return fmt.Sprintf("appended: %s to %s", r.Value, r.Name)
	case "prepend":
		return fmt.Sprintf("prepended: %s to %s", r.Value, r.Name)
	case "remove-from-list":
		if r.Changed != nil && !*r.Changed {
			return fmt.Sprintf("%s not in %s", r.Value, r.Name)
		}
		return fmt.Sprintf("removed: %s from %s", r.Value, r.Name)
	default:
		return fmt.Sprintf("%s %s", r.Op, r.Name)
	}
}
