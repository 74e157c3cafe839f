// Package service exposes gradient calculation over net/rpc.
package service

import (
	"ColorGradient/gradient"
	"ColorGradient/rpc"

	"github.com/BrugadaSyndrome/bslogger"
)

// Name is the name the service is registered under.
const Name = "Gradient"

type Request struct {
	Anchors []gradient.RGB
}

type Reply struct {
	Colors []gradient.RGB
}

// Gradient is registered with a TcpServer. Every request is computed
// independently with gradient.Calculate.
type Gradient struct {
	logger bslogger.Logger

	Server rpc.TcpServer
}

func NewGradient(address string, logger bslogger.Logger) *Gradient {
	g := &Gradient{
		logger: logger,
	}
	g.Server = rpc.NewTcpServer(g, address, Name, logger)
	return g
}

// Calculate is the rpc method Gradient.Calculate.
func (g *Gradient) Calculate(request Request, reply *Reply) error {
	colors, err := gradient.Calculate(request.Anchors)
	if err != nil {
		g.logger.Warningf("Rejected request with %d anchors - %s", len(request.Anchors), err)
		return err
	}
	reply.Colors = colors
	g.logger.Debugf("Calculated gradient for %d anchors", len(request.Anchors))
	return nil
}

// CalculateRemote asks the service at address for the gradient of anchors.
func CalculateRemote(address string, anchors []gradient.RGB, logger bslogger.Logger) ([]gradient.RGB, error) {
	client := rpc.NewTcpClient(address, "GradientClient", logger)
	if err := client.Connect(); err != nil {
		return nil, err
	}
	defer client.Disconnect()

	var reply Reply
	if err := client.Call(Name+".Calculate", Request{Anchors: anchors}, &reply); err != nil {
		return nil, err
	}
	return reply.Colors, nil
}
