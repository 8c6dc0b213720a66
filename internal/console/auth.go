package console

import (
	"crypto/subtle"
	"fmt"
)

// authorizeAdmin asks for the admin PIN when one is configured
func (s *Session) authorizeAdmin() (bool, error) {
	if s.adminPIN == "" {
		return true, nil
	}

	fmt.Fprintln(s.out, "Enter the admin PIN:")
	pin, err := s.readLine()
	if err != nil {
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.adminPIN)) != 1 {
		s.log.Warn("admin access denied")
		writeNotice(s.out, "Invalid admin PIN.")
		return false, nil
	}
	return true, nil
}
