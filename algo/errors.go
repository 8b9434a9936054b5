/*
 * errors.go, part of qiskit-tutorials.
 *
 *
 * Copyright 2026 Raghav King <kingsraghav{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package algo

import "fmt"

// Error is the error type for the run layer. It carries the problem being
// run, when known.
type Error struct {
	message  string
	problem  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.problem == "" {
		return fmt.Sprintf("algo error: %s", err.message)
	}
	return fmt.Sprintf("algo error in %s run: %s", err.problem, err.message)
}

// Decorate adds new information to the error and returns the decoration
// slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

// errDecorate adds the caller's name to an error implementing Decorate, or
// wraps it in an Error otherwise. All failures from the packages below
// pass through here unchanged: the run layer never retries or recovers.
func errDecorate(err error, caller string) error {
	err2, ok := err.(interface{ Decorate(string) []string })
	if ok {
		err2.Decorate(caller)
		return err
	}
	return Error{err.Error(), "", []string{caller}, true}
}
