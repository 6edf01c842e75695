package containers

// ConstError is an error type whose values can be declared as untyped string
// constants, making them immutable sentinels usable with errors.Is.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}
