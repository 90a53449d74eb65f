/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package acc

const (
	AssetExistsFunction   = "assetExists"
	CreateAssetFunction   = "createAsset"
	ReadAssetFunction     = "readAsset"
	UpdateAssetFunction   = "updateAsset"
	DeleteAssetFunction   = "deleteAsset"
	ReadAllAssetsFunction = "readAllAssets"
	AssetHistoryFunction  = "getHistoryForAsset"

	AnimalExistsFunction   = "animalExists"
	CreateAnimalFunction   = "createAnimal"
	ReadAnimalFunction     = "readAnimal"
	UpdateAnimalFunction   = "updateAnimal"
	DeleteAnimalFunction   = "deleteAnimal"
	ReadAllAnimalsFunction = "readAllAnimals"
	AnimalHistoryFunction  = "getHistoryOfAnimal"
)
