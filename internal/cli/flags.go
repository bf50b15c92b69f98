package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// positiveInt is a flag value that only accepts integers greater
// than zero.
type positiveInt int

func (p *positiveInt) String() string {
	if p == nil {
		return "0"
	}
	return strconv.Itoa(int(*p))
}

func (p *positiveInt) Set(value string) error {
	i, err := strconv.Atoi(value)
	if err != nil || i < 1 {
		return fmt.Errorf("%s isn't an int greater than zero", value)
	}
	*p = positiveInt(i)
	return nil
}

// colourList is a flag value holding a list of colour names. Each
// occurrence of the flag replaces the list, and a value may hold
// several names separated by commas. Names that directly follow the
// flag as separate arguments are added with add.
type colourList struct {
	names []string
}

func (c *colourList) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.names, ",")
}

func (c *colourList) Set(value string) error {
	c.names = nil
	return c.add(value)
}

func (c *colourList) add(value string) error {
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("empty colour name in %q", value)
		}
		c.names = append(c.names, name)
	}
	return nil
}

// isFlag reports whether arg would be parsed as a flag.
func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// endsWithColourFlag reports whether the last flag in args is the
// colour list flag, so that any arguments following args belong to it.
func endsWithColourFlag(args []string) bool {
	for i := len(args) - 1; i >= 0; i-- {
		if !isFlag(args[i]) {
			continue
		}
		name := strings.TrimLeft(args[i], "-")
		if j := strings.IndexByte(name, '='); j >= 0 {
			name = name[:j]
		}
		return name == "c" || name == "colors"
	}
	return false
}
