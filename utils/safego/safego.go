/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package safego

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/datazip-inc/rogue-records/utils/logger"
)

var startTime time.Time

// Go runs f in a new goroutine. A panic in f is logged with its stack and
// delivered on the returned channel as an error, otherwise f's own result is.
func Go(f func() error) <-chan error {
	result := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logStack(r)
				result <- fmt.Errorf("panic: %v", r)
			}
		}()
		result <- f()
	}()
	return result
}

// Recovery logs a recovered panic with its stack. With exit set it also logs
// the execution time and exits the process.
func Recovery(exit bool) {
	err := recover()
	if err != nil {
		logStack(err)
	}
	if exit && err != nil {
		logger.Infof("Time of execution %v", time.Since(startTime).String())
		os.Exit(1)
	}
}

func logStack(value any) {
	logger.Error(value)
	// capture stacks trace
	for _, str := range strings.Split(string(debug.Stack()), "\n") {
		logger.Error(strings.ReplaceAll(str, "\t", ""))
	}
}

func init() {
	startTime = time.Now()
}
