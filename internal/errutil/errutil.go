// Package errutil contains methods to simplify working with error
package errutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Close closes the closer and sets the error to err if err is nil
func Close(c io.Closer, err *error) {
	e := c.Close()
	switch *err {
	case nil:
		*err = e
	default:
		if e != nil {
			logrus.WithError(e).Error("Close() failed")
		}
	}
}
