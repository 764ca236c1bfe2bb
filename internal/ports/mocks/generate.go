//go:generate mockgen -source=../product_repository.go -destination=./mock_product_repository.go -package=mocks
//go:generate mockgen -source=../product_mirror.go     -destination=./mock_product_mirror.go     -package=mocks
//go:generate mockgen -source=../ranking_index.go      -destination=./mock_ranking_index.go      -package=mocks
//go:generate mockgen -source=../validator.go          -destination=./mock_validator.go          -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks
//go:generate mockgen -source=../catalog_service.go    -destination=./mock_catalog_service.go    -package=mocks

package mocks
