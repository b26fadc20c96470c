package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const secretPrefix = "ssm:"

// ParameterGetter is the subset of the SSM client used to resolve secrets.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func newSSMClient(ctx context.Context, region string) (*ssm.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config for ssm: %w", err)
	}
	return ssm.NewFromConfig(awsCfg), nil
}

func hasSecretRefs(c map[string]string) bool {
	for _, v := range c {
		if strings.HasPrefix(v, secretPrefix) {
			return true
		}
	}
	return false
}

// ResolveSecrets replaces every value of the form "ssm:<name>" in c with the
// decrypted value of that parameter.
func ResolveSecrets(ctx context.Context, c map[string]string, client ParameterGetter) error {
	for key, value := range c {
		name, ok := strings.CutPrefix(value, secretPrefix)
		if !ok {
			continue
		}
		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("resolve %s from ssm parameter %q: %w", key, name, err)
		}
		if out.Parameter == nil || out.Parameter.Value == nil {
			return fmt.Errorf("ssm parameter %q for %s has no value", name, key)
		}
		c[key] = aws.ToString(out.Parameter.Value)
	}
	return nil
}
