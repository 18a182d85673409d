package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm asks a y/N question on stdin, or on ctx.In when set. Anything but y/yes is a no.
func (c *Context) Confirm(question string) (bool, error) {
	var in io.Reader = os.Stdin
	if c.In != nil {
		in = c.In
	}

	fmt.Printf("%s [y/N]: ", question)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
