package deepseek

import "context"

// IDeepSeek is the DeepSeek completion client.
type IDeepSeek interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a DeepSeek client from config.
func New(config Config) (IDeepSeek, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newDeepSeekImpl(config), nil
}
