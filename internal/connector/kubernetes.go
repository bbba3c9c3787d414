package connector

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"github.com/UIBK-DPS-DC/pulse/internal/config"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

// KubeConnector loads a cluster's resource inventory from a live
// Kubernetes API server, one node per Resource. It never watches,
// schedules, or mutates anything — adapted from the teacher's
// NewKubeConnector/FindNodes, trimmed down to the one-shot read this
// module needs.
type KubeConnector struct {
	clientset *kubernetes.Clientset
}

// NewKubeConnector connects using in-cluster credentials.
func NewKubeConnector() (*KubeConnector, error) {
	restConfig, err := rest.InClusterConfig()
	if err != nil {
		log.Err(err).Send()
		return nil, fmt.Errorf("can't connect to kubernetes cluster: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		log.Err(err).Send()
		return nil, fmt.Errorf("could not init clients: %w", err)
	}

	return &KubeConnector{clientset: clientset}, nil
}

// LoadResources lists every node (skipping any labeled "nodetype:
// ignore", as the teacher's connector did) and turns its allocatable
// capacity into a Resource.
func (kc *KubeConnector) LoadResources(ctx context.Context) ([]model.Resource, error) {
	log.Info().Msg("finding nodes...")

	nodeList, err := kc.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		log.Err(err).Send()
		return nil, fmt.Errorf("could not list nodes: %w", err)
	}

	resources := make([]model.Resource, 0, len(nodeList.Items))

	for _, node := range nodeList.Items {
		if clusterType, ok := node.GetObjectMeta().GetLabels()["nodetype"]; ok && clusterType == "ignore" {
			continue
		}

		allocatable := node.Status.Allocatable

		cpu := allocatable.Cpu().AsApproximateFloat64() - 1
		memory := allocatable.Memory().AsApproximateFloat64()/config.MB - 1000
		disk := allocatable.StorageEphemeral().AsApproximateFloat64() / config.MB

		var gpu float64
		if q, ok := allocatable["nvidia.com/gpu"]; ok {
			gpu = q.AsApproximateFloat64()
		}

		resources = append(resources, model.Resource{
			ResourceName:    node.GetObjectMeta().GetName(),
			Characteristics: model.NewCharacteristics(cpu, memory, disk, gpu),
		})

		log.Info().Msgf("found node %s", node.GetObjectMeta().GetName())
	}

	log.Info().Msg("nodes found")

	return resources, nil
}
