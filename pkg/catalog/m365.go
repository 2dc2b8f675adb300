/*
 * Copyright 2025 Carver Automation Corporation.
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

package catalog

// M365Services is the Microsoft 365 service list.
var M365Services = []Definition{
	// Identity & access (Assets)
	{Service: "entraid", DisplayName: "Entra ID (Azure AD)", Category: "identity", Description: "Users, groups, and identity management"},

	// Device management (Assets)
	{Service: "intune", DisplayName: "Intune", Category: "management", Description: "Device management and compliance"},

	// Collaboration & storage (Data Discovery)
	{Service: "sharepoint", DisplayName: "SharePoint Online", Category: "collaboration", Description: "Document management and collaboration"},
	{Service: "onedrive", DisplayName: "OneDrive for Business", Category: "storage", Description: "Personal cloud storage"},
}
