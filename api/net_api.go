package api

import (
	"errors"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// LocalIPNet finds the first IPv4 address of an interface that is up and
// not loopback. The host shows it so the opponent knows where to join.
func LocalIPNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			var ipnet net.IPNet

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = *v
			case *net.IPAddr:
				ipnet = net.IPNet{IP: v.IP, Mask: net.CIDRMask(32, 32)}
			}

			if ipnet.IP != nil && ipnet.IP.To4() != nil && !ipnet.IP.IsLoopback() {
				return ipnet, nil
			}
		}
	}

	return net.IPNet{}, errors.New("ipnet could not be found")
}

// PeerInet turns a peer address into the analytics key: a single host
// network.
func PeerInet(addr net.Addr) (pqtype.Inet, error) {
	if addr == nil {
		return pqtype.Inet{}, errors.New("no peer address")
	}

	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return pqtype.Inet{}, err
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return pqtype.Inet{}, errors.New("invalid peer ip: " + host)
	}

	bits := 128
	if ip4 := ip.To4(); ip4 != nil {
		ip = ip4
		bits = 32
	}
	return pqtype.Inet{IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, Valid: true}, nil
}
