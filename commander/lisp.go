//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"errors"

	"github.com/steelseries/golisp"
)

// Lisp primitives act on the most recently created Commander.
func (c *Commander) bindPrimitives() {
	golisp.MakePrimitiveFunction("goto-line", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		line, err := intValue(golisp.Car(args))
		if err != nil {
			return nil, errors.New("goto-line requires a number")
		}
		c.window.GotoLine(line)
		return golisp.IntegerWithValue(int64(c.window.GetCursor().Row + 1)), nil
	})
	golisp.MakePrimitiveFunction("cursor-line", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.window.GetCursor().Row + 1)), nil
	})
	golisp.MakePrimitiveFunction("row-count", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.window.GetBuffer().GetRowCount())), nil
	})
	golisp.MakePrimitiveFunction("message", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		val := golisp.Car(args)
		if !golisp.StringP(val) {
			return nil, errors.New("message requires a string")
		}
		c.message.Set(golisp.StringValue(val))
		return val, nil
	})
}

func intValue(d *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return int(golisp.FloatValue(d)), nil
	default:
		return 0, errors.New("not a number")
	}
}

// ParseEval evaluates a lisp expression and returns its printed value,
// or the error text if evaluation fails.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		c.logger.Warn("lisp evaluation failed", "expr", command, "err", err)
		return err.Error()
	}
	c.logger.Debug("lisp evaluation", "expr", command, "value", golisp.String(value))
	return golisp.String(value)
}
