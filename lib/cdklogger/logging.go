// Package cdklogger surfaces synthesis-time messages through CDK annotations,
// so decisions made while declaring resources show up in `cdk synth` output.
package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// prefixed prepends "[constructID]" unless the scope's node path already ends
// with it, which would only repeat what the annotation is attached to.
func prefixed(scope constructs.Construct, constructID, format string, args ...interface{}) *string {
	message := fmt.Sprintf(format, args...)
	if constructID == "" {
		return jsii.String(message)
	}
	cdkPath := *scope.Node().Path()
	if strings.HasSuffix(cdkPath, "/"+constructID) || cdkPath == "/"+constructID {
		return jsii.String(message)
	}
	return jsii.String(fmt.Sprintf("[%s] %s", constructID, message))
}

// LogInfo adds an INFO level message to the construct's metadata.
func LogInfo(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddInfo(prefixed(scope, constructID, format, args...))
}

// LogWarning adds a WARNING level message to the construct's metadata.
func LogWarning(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddWarning(prefixed(scope, constructID, format, args...))
}

// LogError adds an ERROR level message to the construct's metadata.
func LogError(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddError(prefixed(scope, constructID, format, args...))
}
